package domain

// Course represents a catalog entry shown on the courses page
type Course struct {
	ID          int64
	Title       string
	AgeRange    string
	Description string
	Duration    string
	Level       string
	Skills      []string
	Projects    []string
}

// courseCatalog статический каталог курсов, контент совпадает со страницей курсов сайта
var courseCatalog = []Course{
	{
		ID:          1,
		Title:       "IoT with Microbit, Raspberry Pi & Arduino",
		AgeRange:    "Ages 12-18",
		Description: "Learn to build smart devices and understand Internet of Things fundamentals. Students will create weather stations, home automation systems, and sensor networks.",
		Duration:    "8 weeks",
		Level:       "Intermediate",
		Skills:      []string{"Circuit Design", "Sensor Programming", "WiFi Connectivity", "Data Collection", "IoT Protocols"},
		Projects:    []string{"Smart Home System", "Weather Station", "Security Camera", "Plant Monitoring Device"},
	},
	{
		ID:          2,
		Title:       "Robotics with Zimrobo Alpha Set A",
		AgeRange:    "Ages 10-16",
		Description: "Create and program robots using the Zimrobo Alpha robotics kit. Learn mechanical engineering concepts alongside programming logic.",
		Duration:    "10 weeks",
		Level:       "Beginner to Intermediate",
		Skills:      []string{"Mechanical Assembly", "Motor Control", "Sensor Integration", "Algorithm Design", "Problem Solving"},
		Projects:    []string{"Line Following Robot", "Obstacle Avoidance Bot", "Remote Control Car", "Sumo Wrestling Robot"},
	},
	{
		ID:          3,
		Title:       "3D Printing & Design",
		AgeRange:    "Ages 8-18",
		Description: "Design and print 3D models while learning CAD software and understanding manufacturing processes.",
		Duration:    "6 weeks",
		Level:       "Beginner",
		Skills:      []string{"3D Modeling", "CAD Software", "Design Thinking", "Manufacturing", "Prototyping"},
		Projects:    []string{"Custom Phone Case", "Miniature House", "Mechanical Puzzle", "Educational Model"},
	},
	{
		ID:          4,
		Title:       "Python Programming Basics",
		AgeRange:    "Ages 10-18",
		Description: "Master Python from basics to advanced applications. Learn programming fundamentals through games, apps, and data projects.",
		Duration:    "12 weeks",
		Level:       "Beginner to Advanced",
		Skills:      []string{"Variables & Data Types", "Functions", "Object-Oriented Programming", "File Handling", "Libraries"},
		Projects:    []string{"Text Adventure Game", "Password Generator", "Web Scraper", "Personal Finance Tracker"},
	},
	{
		ID:          5,
		Title:       "Web Development",
		AgeRange:    "Ages 12-18",
		Description: "Build modern websites and web applications using HTML, CSS, JavaScript, and React. Learn both frontend and basic backend concepts.",
		Duration:    "14 weeks",
		Level:       "Beginner to Intermediate",
		Skills:      []string{"HTML & CSS", "JavaScript", "React", "Responsive Design", "API Integration"},
		Projects:    []string{"Personal Portfolio", "Task Manager App", "E-commerce Site", "Social Media Dashboard"},
	},
	{
		ID:          6,
		Title:       "Computer Literacy Fundamentals",
		AgeRange:    "Ages 6-12",
		Description: "Essential computer skills including typing, file management, internet safety, and basic software usage.",
		Duration:    "4 weeks",
		Level:       "Beginner",
		Skills:      []string{"Typing Skills", "File Management", "Internet Safety", "Software Basics", "Digital Citizenship"},
		Projects:    []string{"Digital Presentation", "Basic Spreadsheet", "Safe Email Setup", "File Organization System"},
	},
	{
		ID:          7,
		Title:       "AI & Machine Learning",
		AgeRange:    "Ages 14-18",
		Description: "Explore artificial intelligence and machine learning concepts. Build smart applications using Python and ML libraries.",
		Duration:    "10 weeks",
		Level:       "Advanced",
		Skills:      []string{"ML Algorithms", "Data Analysis", "Neural Networks", "AI Ethics", "Model Training"},
		Projects:    []string{"Image Classifier", "Chatbot", "Recommendation System", "Predictive Model"},
	},
	{
		ID:          8,
		Title:       "Computer Science Fundamentals",
		AgeRange:    "Ages 14-18",
		Description: "Core CS concepts including algorithms, data structures, and computational thinking for students preparing for advanced studies.",
		Duration:    "12 weeks",
		Level:       "Intermediate to Advanced",
		Skills:      []string{"Algorithms", "Data Structures", "Time Complexity", "Problem Solving", "Mathematical Thinking"},
		Projects:    []string{"Sorting Visualizer", "Search Algorithm", "Data Structure Library", "Algorithm Race Game"},
	},
	{
		ID:          9,
		Title:       "Programming with Minecraft",
		AgeRange:    "Ages 8-14",
		Description: "Learn programming concepts through Minecraft modding and automation. Make the game do amazing things with code!",
		Duration:    "8 weeks",
		Level:       "Beginner",
		Skills:      []string{"Block-Based Coding", "Logic & Loops", "Functions", "Events", "Game Design"},
		Projects:    []string{"Automated Farm", "Castle Builder", "Mini-Game Creator", "Custom Mods"},
	},
}

// CourseCatalog returns the full course catalog in display order
func CourseCatalog() []Course {
	return append([]Course(nil), courseCatalog...)
}

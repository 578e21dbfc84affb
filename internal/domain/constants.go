package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxPhoneLength   = 32
	MaxMessageLength = 2000
)

// AgeClassCodes фиксированный набор кодов возраста/класса ребенка,
// соответствует вариантам выбора на сайте
var AgeClassCodes = []string{
	"6-8",
	"9-12",
	"13-15",
	"16-18",
	"class1-3",
	"class4-6",
	"class7-8",
	"form1-4",
}

// CourseCodes фиксированный набор кодов курсов для формы записи
var CourseCodes = []string{
	"robotics-microbit-arduino",
	"python-programming",
	"web-development",
	"computer-literacy",
	"ai-machine-learning",
	"cs-fundamentals",
	"minecraft-programming",
	"multiple-courses",
	"unsure",
}

// IsValidAgeClass returns true if the code is one of the fixed age/class buckets
func IsValidAgeClass(code string) bool {
	for _, c := range AgeClassCodes {
		if c == code {
			return true
		}
	}
	return false
}

// IsValidCourseCode returns true if the code is one of the fixed course codes
func IsValidCourseCode(code string) bool {
	for _, c := range CourseCodes {
		if c == code {
			return true
		}
	}
	return false
}

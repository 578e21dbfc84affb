package notifications

import "html/template"

// Шаблоны писем администратору. Верстка повторяет письма, которые
// рассылала старая версия сайта, чтобы почтовые фильтры и привычки
// получателя не сломались при переезде.

const (
	subjectTrialRequest   = "🎯 New Free Trial Request - KodBuds Tech Hub"
	subjectEnrollment     = "🚀 New Course Enrollment - KodBuds Tech Hub"
	subjectContactMessage = "💬 New Contact Message - KodBuds Tech Hub"
)

var trialRequestTemplate = template.Must(template.New("trial_request").Parse(`
<h2>New Free Trial Request</h2>
<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>Contact Information:</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Child's Age/Class:</strong> {{.ChildAgeClass}}</p>
  <p><strong>Preferred Date:</strong> {{.PreferredDate}}</p>
  <p><strong>Preferred Time:</strong> {{.PreferredTime}}</p>
</div>
<p>Please contact the parent to confirm the trial class booking.</p>
<hr style="margin: 30px 0;">
<p style="color: #666; font-size: 12px;">
  This is an automated notification from KodBuds Tech Hub website.
</p>
`))

var enrollmentTemplate = template.Must(template.New("enrollment").Parse(`
<h2>New Course Enrollment</h2>
<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>Student Information:</h3>
  <p><strong>Parent/Guardian:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Child's Age/Class:</strong> {{.ChildAgeClass}}</p>
  <p><strong>Course of Interest:</strong> {{.CourseOfInterest}}</p>
</div>
<p>Please follow up with the enrollment process and course details.</p>
<hr style="margin: 30px 0;">
<p style="color: #666; font-size: 12px;">
  This is an automated notification from KodBuds Tech Hub website.
</p>
`))

var contactMessageTemplate = template.Must(template.New("contact_message").Parse(`
<h2>New Contact Message</h2>
<div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>Contact Information:</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
</div>
<div style="background: #fff3cd; padding: 20px; border-radius: 8px; margin: 20px 0;">
  <h3>Message:</h3>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
</div>
<p>Please respond to the customer inquiry within 24 hours.</p>
<hr style="margin: 30px 0;">
<p style="color: #666; font-size: 12px;">
  This is an automated notification from KodBuds Tech Hub website.
</p>
`))

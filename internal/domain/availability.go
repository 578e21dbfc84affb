package domain

import (
	"fmt"
	"time"
)

// Расписание пробных занятий: Пн-Пт 16:00-18:00, Сб 8:00-12:00 (местное время EAT).
// Слоты - презентационные строки, сервис не выполняет никаких преобразований таймзон.
var (
	// weekdayTrialSlots слоты Пн-Пт.
	// Внимание: последние два слота пересекаются на 15 минут (4:45-5:30 и 5:15-6:00).
	// Так опубликовано в расписании на сайте - не "чинить" без согласования таймтейбла.
	weekdayTrialSlots = []string{
		"4:00 PM - 4:45 PM",
		"4:45 PM - 5:30 PM",
		"5:15 PM - 6:00 PM",
	}

	// saturdayTrialSlots слоты субботы, пять подряд без пересечений
	saturdayTrialSlots = []string{
		"8:00 AM - 8:45 AM",
		"8:45 AM - 9:30 AM",
		"9:30 AM - 10:15 AM",
		"10:15 AM - 11:00 AM",
		"11:00 AM - 11:45 AM",
	}
)

// IsBookableWeekday returns true if trial classes run on the date's weekday.
// Занятия идут с понедельника по субботу, воскресенье всегда недоступно.
// Проверка "дата не в прошлом" - отдельное условие (IsDateInPast), обе проверки
// должны выполняться вызывающей стороной вместе.
func IsBookableWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd >= time.Monday && wd <= time.Saturday
}

// TrialSlotsFor returns the ordered list of trial slot labels for the date
// Пн-Пт - три слота, суббота - пять, воскресенье - пусто
func TrialSlotsFor(date time.Time) []string {
	wd := date.Weekday()

	switch {
	case wd >= time.Monday && wd <= time.Friday:
		return append([]string(nil), weekdayTrialSlots...)
	case wd == time.Saturday:
		return append([]string(nil), saturdayTrialSlots...)
	default:
		return []string{}
	}
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// FormatLongDate formats a date the way the site displays it: "September 3rd, 2026".
// Формат должен совпадать со строками preferred_time, записанными старым сайтом
func FormatLongDate(date time.Time) string {
	return fmt.Sprintf("%s %d%s, %d",
		date.Month().String(), date.Day(), ordinalSuffix(date.Day()), date.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

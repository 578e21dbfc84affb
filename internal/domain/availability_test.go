package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-31 - понедельник, дальше дни недели идут по порядку
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsBookableWeekday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "monday", date: date(2026, time.August, 31), want: true},
		{name: "tuesday", date: date(2026, time.September, 1), want: true},
		{name: "friday", date: date(2026, time.September, 4), want: true},
		{name: "saturday", date: date(2026, time.September, 5), want: true},
		{name: "sunday", date: date(2026, time.September, 6), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBookableWeekday(tt.date))
		})
	}
}

func TestTrialSlotsFor_Weekday(t *testing.T) {
	// Среда: три слота, последние два пересекаются на 15 минут -
	// так опубликовано в расписании
	slots := TrialSlotsFor(date(2026, time.September, 2))

	require.Len(t, slots, 3)
	assert.Equal(t, []string{
		"4:00 PM - 4:45 PM",
		"4:45 PM - 5:30 PM",
		"5:15 PM - 6:00 PM",
	}, slots)
}

func TestTrialSlotsFor_Saturday(t *testing.T) {
	slots := TrialSlotsFor(date(2026, time.September, 5))

	require.Len(t, slots, 5)
	assert.Equal(t, []string{
		"8:00 AM - 8:45 AM",
		"8:45 AM - 9:30 AM",
		"9:30 AM - 10:15 AM",
		"10:15 AM - 11:00 AM",
		"11:00 AM - 11:45 AM",
	}, slots)
}

func TestTrialSlotsFor_Sunday(t *testing.T) {
	slots := TrialSlotsFor(date(2026, time.September, 6))

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestTrialSlotsFor_ReturnsCopy(t *testing.T) {
	slots := TrialSlotsFor(date(2026, time.September, 2))
	slots[0] = "mutated"

	again := TrialSlotsFor(date(2026, time.September, 2))
	assert.Equal(t, "4:00 PM - 4:45 PM", again[0])
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, time.September, 3, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "yesterday", date: date(2026, time.September, 2), want: true},
		{name: "today midnight", date: date(2026, time.September, 3), want: false},
		// Сегодняшняя дата не в прошлом, даже если момент времени уже прошел
		{name: "today earlier hour", date: time.Date(2026, time.September, 3, 8, 0, 0, 0, time.UTC), want: false},
		{name: "tomorrow", date: date(2026, time.September, 4), want: false},
		{name: "last year", date: date(2025, time.September, 3), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateInPast(tt.date, now))
		})
	}
}

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "3rd", date: date(2026, time.September, 3), want: "September 3rd, 2026"},
		{name: "1st", date: date(2026, time.September, 1), want: "September 1st, 2026"},
		{name: "2nd", date: date(2026, time.November, 2), want: "November 2nd, 2026"},
		{name: "11th not 11st", date: date(2026, time.September, 11), want: "September 11th, 2026"},
		{name: "12th not 12nd", date: date(2026, time.September, 12), want: "September 12th, 2026"},
		{name: "13th not 13rd", date: date(2026, time.September, 13), want: "September 13th, 2026"},
		{name: "21st", date: date(2026, time.September, 21), want: "September 21st, 2026"},
		{name: "22nd", date: date(2026, time.September, 22), want: "September 22nd, 2026"},
		{name: "23rd", date: date(2026, time.September, 23), want: "September 23rd, 2026"},
		{name: "30th", date: date(2026, time.September, 30), want: "September 30th, 2026"},
		{name: "31st", date: date(2026, time.August, 31), want: "August 31st, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLongDate(tt.date))
		})
	}
}

func TestIsValidAgeClass(t *testing.T) {
	for _, code := range AgeClassCodes {
		assert.True(t, IsValidAgeClass(code), "code %q must be valid", code)
	}

	assert.False(t, IsValidAgeClass(""))
	assert.False(t, IsValidAgeClass("5-7"))
	assert.False(t, IsValidAgeClass("form5"))
}

func TestIsValidCourseCode(t *testing.T) {
	for _, code := range CourseCodes {
		assert.True(t, IsValidCourseCode(code), "code %q must be valid", code)
	}

	assert.False(t, IsValidCourseCode(""))
	assert.False(t, IsValidCourseCode("quantum-computing"))
}

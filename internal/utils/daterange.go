package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31")
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// StartOfDay returns the date as a UTC timestamp at midnight.
func (d Date) StartOfDay() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// ParseDateRange converts a yyyy-mm-dd pair into a half-open [from, to)
// timestamp range: the returned "to" is the start of the day AFTER toStr,
// so a same-day range still covers the whole day. Empty strings mean
// unbounded and come back as zero times.
func ParseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time

	if fromStr != "" {
		d, err := ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date: %v", err)
		}
		from = d.StartOfDay()
	}

	if toStr != "" {
		d, err := ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date: %v", err)
		}
		to = d.StartOfDay().AddDate(0, 0, 1)
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date is before from date")
	}

	return from, to, nil
}

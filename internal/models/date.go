package models

import "time"

// DateLayout is the wire and storage format of calendar dates
// (due_date, upload_date, communication date).
const DateLayout = "2006-01-02"

// DateOf drops the time of day and keeps the calendar day of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

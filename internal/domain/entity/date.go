package entity

import "time"

// DateLayout formato ISO-8601 de las fechas de calendario (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateOnly trunca t al día calendario en UTC, igual que una columna DATE.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate devuelve la fecha en ISO o "" si es nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

package dates

import "time"

// Appointments are calendar dates with no time of day. Everything is
// normalized to midnight UTC so equality checks and counting queries
// compare whole days.

const Layout = "2006-01-02"

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(t), nil
}

func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

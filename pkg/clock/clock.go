package clock

import "time"

// Clock provides the current UTC time. Both extraction paths stamp
// processed_at through the same Clock so tests can pin the timestamp.
type Clock interface {
	NowUTC() time.Time
}

// UTC is the real wall clock
type UTC struct{}

// NowUTC returns the current time in UTC
func (UTC) NowUTC() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at a single instant, for tests
type Fixed struct {
	T time.Time
}

// NowUTC returns the frozen instant in UTC
func (f Fixed) NowUTC() time.Time {
	return f.T.UTC()
}

// Timestamp formats t as the ISO-8601 string used in records and health
// reports.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

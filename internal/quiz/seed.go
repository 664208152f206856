package quiz

import "time"

// DailySeed derives the shuffle seed for the UTC calendar day containing t,
// formatted YYYYMMDD. Every instant within the same UTC day yields the same
// seed; it changes exactly at UTC midnight.
func DailySeed(t time.Time) string {
	return t.UTC().Format("20060102")
}

package content

import (
	"strings"
	"time"
)

// Date layouts of the derived record fields.
const (
	DateLayout    = time.DateOnly
	NeatLayout    = "2 January, 2006"
	RFC822Layout  = "Mon, 02 Jan 2006 15:04:05 +0000"
	RFC3339Layout = "2006-01-02T15:04:05"
)

// ParseDate parses a YYYY-MM-DD date at midnight UTC. Single digit months
// and days are accepted.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-1-2", strings.TrimSpace(s), time.UTC)
}

// Dates holds the presentation forms of a publication date.
type Dates struct {
	Date    string
	Neat    string
	RFC822  string
	RFC3339 string
}

// FormatDates derives every presentation form of t.
func FormatDates(t time.Time) Dates {
	return Dates{
		Date:    t.Format(DateLayout),
		Neat:    t.Format(NeatLayout),
		RFC822:  t.Format(RFC822Layout),
		RFC3339: t.Format(RFC3339Layout),
	}
}

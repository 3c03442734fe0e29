package history

// DateFormat is the calendar-date layout used in record Date fields.
const DateFormat = "2006-01-02"

// Link categories recorded in a Record's Type field.
const (
	TypeShorts  = "shorts"
	TypeRegular = "regular"
)

// Record is a single clipboard conversion. Records are immutable once
// appended; the store only adds and removes them.
type Record struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"` // YYYY-MM-DD, the day the conversion happened
	Type  string `json:"type"` // "shorts" or "regular"
}

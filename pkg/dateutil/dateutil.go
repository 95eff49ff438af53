package dateutil

import "time"

const (
	// ISODate is the layout used for report dates.
	ISODate = "2006-01-02"
	// ISOTimestamp is the layout used for generation timestamps.
	ISOTimestamp = "2006-01-02 15:04:05"
	// FileStamp is safe to embed in file names.
	FileStamp = "20060102_150405"
)

// FormatDate formats t as YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

// FormatTimestamp formats t as YYYY-MM-DD HH:MM:SS.
func FormatTimestamp(t time.Time) string {
	return t.Format(ISOTimestamp)
}

// FormatFileStamp formats t for use in generated file names.
func FormatFileStamp(t time.Time) string {
	return t.Format(FileStamp)
}

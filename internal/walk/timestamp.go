package walk

import "time"

// shotTimeLayouts are the timestamp formats seen in photo metadata, tried
// in order. The last one is the EXIF DateTimeOriginal convention with
// colon-separated date fields.
var shotTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006:01:02 15:04:05",
}

// ParseShotTime parses a photo shot-time string. It returns nil when no
// layout matches; a missing or garbled timestamp is expected data, not an
// error.
func ParseShotTime(s string) *time.Time {
	for _, layout := range shotTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTimestamp is returned when a stored timestamp cannot be parsed.
// Callers are expected to log it and treat the field as absent.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// storageLayout is the format written back to the store: ISO-8601 in UTC with
// millisecond precision.
const storageLayout = "2006-01-02T15:04:05.000Z07:00"

// ToEpochMillis parses an ISO-8601 timestamp ("Z" or an explicit offset) and
// returns milliseconds since the Unix epoch, UTC.
func ToEpochMillis(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return t.UTC().UnixMilli(), nil
}

// ToStorageString is the inverse of ToEpochMillis, used for persistence writes.
func ToStorageString(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format(storageLayout)
}

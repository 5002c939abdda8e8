package constants

import (
	"database/sql/driver"
	"fmt"
)

// StreamAccess mirrors the Postgres ENUM 'stream_access'
type StreamAccess string

const (
	AccessPublic StreamAccess = "PUBLIC"
	AccessVIP    StreamAccess = "VIP"
)

func (a StreamAccess) String() string { return string(a) }

// Valid reports whether the tier is one of the closed set.
func (a StreamAccess) Valid() bool {
	return a == AccessPublic || a == AccessVIP
}

// Scan implements the sql.Scanner interface
func (a *StreamAccess) Scan(src interface{}) error {
	if src == nil {
		*a = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*a = StreamAccess(v)
	case []byte:
		*a = StreamAccess(v)
	default:
		return fmt.Errorf("StreamAccess: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (a StreamAccess) Value() (driver.Value, error) { return string(a), nil }

// StreamSource is the playback source of a stream entry.
type StreamSource string

const (
	SourceYouTube StreamSource = "YOUTUBE"
	SourceOBS     StreamSource = "OBS"
)

func (s StreamSource) String() string { return string(s) }

func (s StreamSource) Valid() bool {
	return s == SourceYouTube || s == SourceOBS
}

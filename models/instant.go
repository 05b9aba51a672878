package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Instant is a point in time that decodes from either an RFC 3339 string
// or a JSON number of milliseconds since the Unix epoch.
type Instant struct {
	time.Time
}

func (i *Instant) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		i.Time = t
		return nil
	}

	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	i.Time = time.UnixMilli(ms)
	return nil
}

package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp accepts whatever date layout the API emits. Python backends send
// "2024-05-01 10:11:12+07:00" rather than RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// OrNow returns the time, or now when the API sent none.
func (t Timestamp) OrNow() time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t.Time
}

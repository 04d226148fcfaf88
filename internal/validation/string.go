package validation

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotAString = errors.New("not a valid string")

// String is a JSON string field that remembers whether it was sent at all
// and whether it was sent as null, so both can be reported separately.
type String struct {
	Value string
	Set   bool
	Null  bool
}

// StringOf returns a String that was sent with value v.
func StringOf(v string) String {
	return String{Value: v, Set: true}
}

func (s *String) UnmarshalJSON(data []byte) error {
	s.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.Null = true
		s.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &s.Value); err != nil {
		return errNotAString
	}
	return nil
}

// Presence returns the message for an absent or null field, or "" when a
// value was sent.
func (s String) Presence() string {
	switch {
	case !s.Set:
		return MsgRequired
	case s.Null:
		return MsgNull
	}
	return ""
}

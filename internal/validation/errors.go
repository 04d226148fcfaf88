package validation

import (
	"sort"
	"strings"
)

// Errors maps a field name to its messages. A nil or empty Errors means the
// input was valid.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg against field, allocating e if needed.
func (e *Errors) Add(field, msg string) {
	if *e == nil {
		*e = make(Errors)
	}
	(*e)[field] = append((*e)[field], msg)
}

// Err returns e as an error, or nil when nothing was recorded.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
	MsgNull     = "This field may not be null."
)

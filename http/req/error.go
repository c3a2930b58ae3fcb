package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/basecamp"
)

// A ValidationError names a payload field whose value broke one of its rules,
// such as "paths[1]" breaking "required; string".
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("%s: got %v", e.Field, e.Got)
	}

	return fmt.Sprintf("%s: got %v, breaks %s", e.Field, e.Got, e.Rule)
}

// ValidationErrors are every ValidationError found in one payload, in field order.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "; ")
}

// Field returns the first ValidationError for name.
func (v ValidationErrors) Field(name string) (ValidationError, bool) {
	for _, err := range v {
		if err.Field == name {
			return err, true
		}
	}

	return ValidationError{}, false
}

// MarshalJSON nests the errors under "validationErrors",
// writing an empty object when there are none.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string][]ValidationError{"validationErrors": v})
}

func (ValidationErrors) Unwrap() error { return basecamp.ErrNotValid }

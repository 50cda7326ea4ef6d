package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// wireAssignment is the upstream's record shape. Fields arrive loosely
// typed (spreadsheet-backed service), so the numeric and free-form fields
// are coerced here rather than trusted.
type wireAssignment struct {
	UID          string     `json:"uid"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Priority     flexString `json:"priority"`
	DaysUntilDue flexDays   `json:"daysUntilDue"`
	DueDate      flexString `json:"dueDate"`
}

// flexDays decodes a day count that may arrive as a JSON number, a
// numeric string, null, or garbage. Anything unusable leaves Value nil.
type flexDays struct {
	Value *int
}

// daysBound caps the accepted due distance. Values further out than a
// few hundred years are spreadsheet garbage, and floats beyond the int
// range have no defined conversion at all.
const daysBound = 100000

func coerceDays(n float64) (int, bool) {
	if math.IsNaN(n) || n > daysBound || n < -daysBound {
		return 0, false
	}
	return int(n), true
}

func (f *flexDays) UnmarshalJSON(data []byte) error {
	f.Value = nil

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if d, ok := coerceDays(n); ok {
			f.Value = &d
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			if d, ok := coerceDays(n); ok {
				f.Value = &d
			}
		}
	}

	// Non-numeric input is not an error; the record simply has no
	// usable due distance.
	return nil
}

// flexString decodes a display value that may arrive as a string or a
// bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	*f = flexString(strings.Trim(trimmed, `"`))
	return nil
}

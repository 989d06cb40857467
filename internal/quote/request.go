// Package quote turns an estimate request into a priced response. It is the
// validated boundary in front of the pricing engine: requests are checked
// here, the region is resolved from the address, and the estimate is shaped
// for the API.
package quote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Accepted questionnaire answers.
var (
	pitchAnswers  = []string{"", "simple", "moderate", "complex"}
	accessAnswers = []string{"", "easy", "moderate", "difficult"}
)

// ValidationError rejects a request before any pricing happens.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Area is a roof area in square feet. It decodes from a JSON number or a
// numeric string; null leaves it zero so Validate can report it missing.
type Area float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Area) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return &ValidationError{Field: "roofArea", Reason: "must be a number"}
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return &ValidationError{Field: "roofArea", Reason: "must be a number"}
	}
	*a = Area(v)
	return nil
}

// Request is the estimate request body.
type Request struct {
	RoofArea           Area     `json:"roofArea"`
	MaterialPreference string   `json:"materialPreference"`
	RoofType           string   `json:"roofType,omitempty"`
	Address            string   `json:"address"`
	StateCode          string   `json:"stateCode,omitempty"`
	PitchComplexity    string   `json:"pitchComplexity,omitempty"`
	PropertyAccess     string   `json:"propertyAccess,omitempty"`
	RoofConditions     []string `json:"roofConditions,omitempty"`
}

// Validate checks required fields and enumerated answers.
func (r *Request) Validate() error {
	area := float64(r.RoofArea)
	switch {
	case area == 0:
		return &ValidationError{Field: "roofArea", Reason: "is required"}
	case math.IsNaN(area) || math.IsInf(area, 0) || area < 0:
		return &ValidationError{Field: "roofArea", Reason: "must be a positive number"}
	}
	if strings.TrimSpace(r.MaterialPreference) == "" {
		return &ValidationError{Field: "materialPreference", Reason: "is required"}
	}
	if strings.TrimSpace(r.Address) == "" {
		return &ValidationError{Field: "address", Reason: "is required"}
	}
	if !oneOf(r.PitchComplexity, pitchAnswers) {
		return &ValidationError{Field: "pitchComplexity", Reason: "must be simple, moderate, or complex"}
	}
	if !oneOf(r.PropertyAccess, accessAnswers) {
		return &ValidationError{Field: "propertyAccess", Reason: "must be easy, moderate, or difficult"}
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	return slices.Contains(allowed, strings.ToLower(strings.TrimSpace(v)))
}

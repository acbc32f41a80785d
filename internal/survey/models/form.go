package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	dErrors "unipick/pkg/domain-errors"
)

// FieldErrors maps a wire field name to a display message. A nil or empty
// set means the checked fields are complete.
type FieldErrors map[string]string

// Form is one country's answer set. All mutation goes through ApplyJSON (or
// the concrete form's typed Apply) and Toggle.
type Form interface {
	Country() Country
	// ApplyJSON merges a partial update. Unknown keys are rejected, which also
	// keeps derived request flags out of reach.
	ApplyJSON(data []byte) error
	// Toggle flips one option of a multi-select field.
	Toggle(field, option string) error
	// Validate runs the required-field predicate over every field.
	Validate() FieldErrors
	// Steps is the number of wizard sub-steps; 1 for single-page forms.
	Steps() int
	// ValidateStep checks only the fields shown on the given 1-based step.
	ValidateStep(step int) FieldErrors
	// Input projects the answers into the backend request input.
	Input() any
	// Schema describes the fields for rendering.
	Schema() []FieldSpec
}

// FieldKind tells a client how to render a field.
type FieldKind string

const (
	KindSingle FieldKind = "single"
	KindMulti  FieldKind = "multi"
	KindNumber FieldKind = "number"
	KindBool   FieldKind = "bool"
	KindChoice FieldKind = "choice"
)

// FieldSpec describes one form field.
type FieldSpec struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
	Min      int       `json:"min,omitempty"`
	Max      int       `json:"max,omitempty"`
	Step     int       `json:"step"`
}

func decodePatch(data []byte, patch any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(patch); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid form update")
	}
	return nil
}

// toggle removes option when present and appends it otherwise, never
// mutating the input slice. An emptied selection collapses to nil so a
// select/deselect pair restores the prior value exactly.
func toggle[T ~string](values []T, option T) []T {
	if i := slices.Index(values, option); i >= 0 {
		out := slices.Delete(slices.Clone(values), i, i+1)
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return append(slices.Clone(values), option)
}

func toggleOption[T interface {
	~string
	IsValid() bool
}](values []T, field, option string) ([]T, error) {
	v := T(option)
	if !v.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%q is not an option of %s", option, field))
	}
	return toggle(values, v), nil
}

func unknownField(c Country, field string) error {
	return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s form has no multi-select field %q", c, field))
}

func setSlice[T any](dst *[]T, src *[]T) {
	if src == nil {
		return
	}
	if len(*src) == 0 {
		*dst = nil
		return
	}
	*dst = slices.Clone(*src)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// orEmpty keeps unanswered multi-selects as [] rather than null on the wire.
func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

func singleSpec[T ~string](key, label string, options []T, step int) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: KindSingle, Options: optionStrings(options), Required: true, Step: step}
}

func multiSpec[T ~string](key, label string, options []T, min, step int) FieldSpec {
	return FieldSpec{Key: key, Label: label, Kind: KindMulti, Options: optionStrings(options), Required: true, Min: min, Step: step}
}

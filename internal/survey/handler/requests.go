package handler

import (
	"strings"

	"unipick/pkg/validation"
)

// StartRequest opens a session. An empty country selects the default.
type StartRequest struct {
	Country string `json:"country"`
}

func (r *StartRequest) Normalize() {
	if r == nil {
		return
	}
	r.Country = strings.TrimSpace(r.Country)
}

// ToggleRequest flips one option of a multi-select field.
type ToggleRequest struct {
	Field  string `json:"field" validate:"required,notblank"`
	Option string `json:"option" validate:"required,notblank"`
}

func (r *ToggleRequest) Normalize() {
	if r == nil {
		return
	}
	r.Field = strings.TrimSpace(r.Field)
}

func (r *ToggleRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	if err := validation.CheckStringLength("field", r.Field, validation.MaxFieldNameLength); err != nil {
		return err
	}
	return validation.CheckStringLength("option", r.Option, validation.MaxOptionLength)
}

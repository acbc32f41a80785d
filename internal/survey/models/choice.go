package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Choice is a tri-state answer to an accept/refuse question. Storing one
// value instead of two booleans keeps paired flags from drifting apart; the
// booleans only exist in the request input.
type Choice string

const (
	ChoiceUnset  Choice = ""
	ChoiceAccept Choice = "accept"
	ChoiceReject Choice = "reject"
)

func (c Choice) IsValid() bool {
	return c == ChoiceAccept || c == ChoiceReject
}

// Accepted projects the choice to the "accept" boolean.
func (c Choice) Accepted() bool {
	return c == ChoiceAccept
}

// Rejected projects the choice to the paired exclusion boolean.
func (c Choice) Rejected() bool {
	return c == ChoiceReject
}

// ChoiceOf converts a boolean answer.
func ChoiceOf(accept bool) Choice {
	if accept {
		return ChoiceAccept
	}
	return ChoiceReject
}

// UnmarshalJSON accepts true/false, "accept"/"reject" or "" (unset).
func (c *Choice) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "true":
		*c = ChoiceAccept
		return nil
	case "false":
		*c = ChoiceReject
		return nil
	case "null":
		*c = ChoiceUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("choice must be a boolean or one of accept/reject: %w", err)
	}
	switch Choice(s) {
	case ChoiceUnset, ChoiceAccept, ChoiceReject:
		*c = Choice(s)
		return nil
	}
	return fmt.Errorf("unknown choice %q", s)
}

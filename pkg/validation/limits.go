package validation

import (
	"fmt"
	"unicode/utf8"

	dErrors "unipick/pkg/domain-errors"
)

// Limits on free-form input crossing the HTTP boundary. Closed option sets are
// checked by the "option" tag; these bound everything the user can type.
const (
	MaxFieldNameLength    = 64
	MaxOptionLength       = 128
	MaxSearchLength       = 200
	MaxStudentTestAnswers = 200
	MaxAnswerKeyLength    = 64
)

// CheckCount fails when count exceeds max.
func CheckCount(field string, count, max int) error {
	if count > max {
		return limitError(field, fmt.Sprintf("%s allows at most %d entries", field, max))
	}
	return nil
}

// CheckStringLength fails when value has more than max characters.
func CheckStringLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return limitError(field, fmt.Sprintf("%s exceeds max length of %d", field, max))
	}
	return nil
}

// CheckEachKeyLength applies CheckStringLength to every key of m.
func CheckEachKeyLength[V any](field string, m map[string]V, max int) error {
	for key := range m {
		if utf8.RuneCountInString(key) > max {
			return limitError(field, fmt.Sprintf("%s keys exceed max length of %d", field, max))
		}
	}
	return nil
}

func limitError(field, msg string) error {
	return dErrors.NewValidation(msg, map[string]string{field: msg})
}

package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives shared by every layer.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "evaluation not found"}
		s.Equal("evaluation not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	err1 := New(CodeConflict, "submission in progress")
	err2 := New(CodeConflict, "another message")
	s.True(errors.Is(err1, err2))
	s.False(errors.Is(err1, New(CodeNotFound, "")))
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code and fields", func() {
		inner := NewValidation("form incomplete", map[string]string{"budget_usd": "budget_usd is required"})
		wrapped := Wrap(inner, CodeInternal, "submit failed")

		s.True(HasCode(wrapped, CodeValidation))
		s.Equal(map[string]string{"budget_usd": "budget_usd is required"}, FieldsOf(wrapped))
	})

	s.Run("applies code to foreign errors", func() {
		wrapped := Wrap(errors.New("boom"), CodeUnavailable, "backend down")
		s.True(HasCode(wrapped, CodeUnavailable))
		s.Nil(FieldsOf(wrapped))
	})
}

func (s *DomainErrorsSuite) TestNewValidationCopiesFields() {
	fields := map[string]string{"ucas_route": "ucas_route is required"}
	err := NewValidation("form incomplete", fields)
	fields["ucas_route"] = "changed"

	s.Equal("ucas_route is required", FieldsOf(err)["ucas_route"])
}

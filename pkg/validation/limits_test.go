package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "unipick/pkg/domain-errors"
)

// Boundary checks: max passes, max+1 fails with a field-keyed error.
type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestCheckCount() {
	s.NoError(CheckCount("answers", 200, 200))

	err := CheckCount("answers", 201, 200)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal("answers allows at most 200 entries", dErrors.FieldsOf(err)["answers"])
}

func (s *LimitsSuite) TestCheckStringLengthCountsCharacters() {
	s.NoError(CheckStringLength("option", strings.Repeat("学", 128), 128))

	err := CheckStringLength("option", strings.Repeat("学", 129), 128)
	s.Require().Error(err)
	s.Contains(dErrors.FieldsOf(err), "option")
}

func (s *LimitsSuite) TestCheckEachKeyLength() {
	s.NoError(CheckEachKeyLength("answers", map[string]any{"q1": 1}, 4))
	s.Error(CheckEachKeyLength("answers", map[string]int{"question-1": 1}, 4))
	s.NoError(CheckEachKeyLength[any]("answers", nil, 4))
}

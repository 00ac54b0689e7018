package pointer

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PointerTestSuite struct {
	suite.Suite
}

func TestPointerTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PointerTestSuite))
}

func (s *PointerTestSuite) TestTo() {
	// arrange
	value := "value"

	// act
	actual := To(value)

	// assert
	s.Equal(&value, actual)
}

func (s *PointerTestSuite) TestDerefOrZeroNonNil() {
	// arrange
	value := 42
	ptr := &value

	// act
	actual := DerefOrZero(ptr)

	// assert
	s.Equal(value, actual)
}

func (s *PointerTestSuite) TestDerefOrZeroNil() {
	// arrange
	var ptr *string = nil

	// act
	actual := DerefOrZero(ptr)

	// assert
	s.Equal("", actual)
}

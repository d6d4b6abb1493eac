package apperr_test

import (
	"errors"
	"testing"

	"github.com/arcpost/arcpost/apperr"
	"github.com/stretchr/testify/assert"
)

func TestErrorKindsSatisfyErrorAs(t *testing.T) {
	err := apperr.Wrap(apperr.NewInfeasibleInstance(7, "disconnected from depot"), "ucpp solve")

	var target *apperr.InfeasibleInstance
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 7, target.LinkID)
}

func TestUnsupportedSolverMessage(t *testing.T) {
	err := apperr.NewUnsupportedSolver(6)
	assert.Contains(t, err.Error(), "6")
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "x"))
}

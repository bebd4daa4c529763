package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_ValidationError(t *testing.T) {
	base := errors.New("bad payload")
	err := NewValidationError(base, FieldError{Field: "code", Error: "already taken"})

	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("NewValidationError() returned %T", err)
	}
	assert.Equal(t, "bad payload", vErr.Error())
	assert.Equal(t, "code", vErr.Fields[0].Field)
	assert.Equal(t, base, vErr.Unwrap())

	assert.Equal(t, "", (&ValidationError{}).Error())
}

func Test_IsShutdown(t *testing.T) {
	err := NewShutdownError("database gone")
	assert.True(t, IsShutdown(err))
	assert.Equal(t, "database gone", err.Error())

	// the cause survives wrapping
	assert.True(t, IsShutdown(errors.Wrap(err, "checking readiness")))

	assert.False(t, IsShutdown(errors.New("lol")))
	assert.False(t, IsShutdown(NewValidationError(errors.New("nope"))))
}

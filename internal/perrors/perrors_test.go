package perrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesCodeAndStatus(t *testing.T) {
	err := New(ErrCodeNotFound, "Member not found", errors.New("no rows"))

	var perr Err
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusNotFound, perr.HttpStatus())
	assert.Equal(t, "not_found", perr.Code.Code)
	assert.Equal(t, "no rows", perr.Error())
	assert.NotEmpty(t, perr.Stacktrace)
}

func TestNewWithNilCause(t *testing.T) {
	err := New(ErrCodeInternalServer, "Something broke", nil)

	var perr Err
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "error missing", perr.Error())
	assert.Equal(t, http.StatusInternalServerError, perr.HttpStatus())
}

func TestConstructorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewErrInvalidRequest("bad", errors.New("bad")), http.StatusBadRequest},
		{NewErrUnauthorized("nope", errors.New("nope")), http.StatusUnauthorized},
		{NewErrNotFound("missing", errors.New("missing")), http.StatusNotFound},
		{NewErrInternalServerError("boom", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, c := range cases {
		var perr Err
		require.True(t, errors.As(c.err, &perr))
		assert.Equal(t, c.status, perr.HttpStatus())
	}
}

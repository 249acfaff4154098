package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"auth", Auth("invalid credentials"), http.StatusUnauthorized},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := Conflict("duplicate email")
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("boom"), KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	assert.NoError(t, errs.Err())

	errs.Add("email", "email is required")
	errs.Add("email", "invalid email format")
	errs.Add("password", "too weak")

	err := errs.Err()
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindValidation, e.Kind)
	assert.Len(t, e.Fields["email"], 2)
	assert.Len(t, e.Fields["password"], 1)
}

func TestConflictField(t *testing.T) {
	e := ConflictField("email", "email is already registered")
	assert.Equal(t, KindConflict, e.Kind)
	assert.Equal(t, []string{"email is already registered"}, e.Fields["email"])
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

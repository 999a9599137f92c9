// file: internals/helpers/db_errors_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`pq: duplicate key value violates unique constraint "uq_users_username"`)))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: users.user_username")))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 2.66, Round2(2.6599999))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -0.66, Round2(-0.66))
}

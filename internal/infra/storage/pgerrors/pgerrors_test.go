package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"})

	assert.True(t, Is(wrapped, ExclusionViolation))
	assert.True(t, Is(wrapped, UniqueViolation, ExclusionViolation))
	assert.False(t, Is(wrapped, UniqueViolation))
	assert.False(t, Is(errors.New("plain"), UniqueViolation))
	assert.Equal(t, "", Code(nil))
}

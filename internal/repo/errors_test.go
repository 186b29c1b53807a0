package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		wantConcurrent bool
	}{
		{name: "deadlock", err: &pq.Error{Code: codeDeadlockDetected}, wantConcurrent: true},
		{name: "serialization failure", err: &pq.Error{Code: codeSerializationFailure}, wantConcurrent: true},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", &pq.Error{Code: codeDeadlockDetected}), wantConcurrent: true},
		{name: "unique violation", err: &pq.Error{Code: codeUniqueViolation}},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapErr("failed to reserve stock", tc.err)

			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "failed to reserve stock")
			assert.Equal(t, tc.wantConcurrent, errors.Is(err, entities.ErrConcurrentUpdate))
			assert.Equal(t, tc.wantConcurrent, errors.Is(err, entities.ErrConflict))
		})
	}
}

func TestIsViolation(t *testing.T) {
	assert.True(t, isViolation(fmt.Errorf("insert: %w", &pq.Error{Code: codeUniqueViolation}), codeUniqueViolation))
	assert.False(t, isViolation(&pq.Error{Code: codeForeignKeyViolation}, codeUniqueViolation))
	assert.False(t, isViolation(errors.New("boom"), codeUniqueViolation))
}

package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type fakeResult struct {
	rows int64
	err  error
}

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.rows, f.err }

func TestExpectOneRow(t *testing.T) {
	assert.NoError(t, expectOneRow(fakeResult{rows: 1}, "player x"))

	err := expectOneRow(fakeResult{rows: 0}, "player x")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "player x")

	err = expectOneRow(fakeResult{err: errors.New("driver")}, "player x")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestExpectTransition(t *testing.T) {
	assert.NoError(t, expectTransition(fakeResult{rows: 1}, "tournament x"))

	err := expectTransition(fakeResult{rows: 0}, "tournament x no longer open")
	assert.True(t, errors.Is(err, ErrStaleState))
	assert.False(t, errors.Is(err, ErrNotFound))

	err = expectTransition(fakeResult{err: errors.New("driver")}, "tournament x")
	assert.False(t, errors.Is(err, ErrStaleState))
}

func TestWrapInsertError(t *testing.T) {
	dup := &pq.Error{Code: uniqueViolation, Message: "duplicate key value"}
	err := wrapInsertError(dup, "player Ana")
	assert.True(t, errors.Is(err, ErrDuplicate))

	other := &pq.Error{Code: "23503", Message: "foreign key violation"}
	err = wrapInsertError(other, "registration")
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.Contains(t, err.Error(), "failed to create registration")
}

func TestNullableUUID(t *testing.T) {
	assert.False(t, nullableUUID(nil).Valid)
}

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	base := &codedError{code: "ACCOUNT_LOCKED"}
	err := Wrapf(Wrap(base, "login"), "account %d", 7)

	assert.Equal(t, "account 7: login: ACCOUNT_LOCKED", err.Error())
	assert.True(t, Is(err, base))

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Same(t, base, got)

	var target *codedError
	assert.True(t, As(WithStack(base), &target))
}

func TestAsTypeMiss(t *testing.T) {
	got, ok := AsType[*codedError](New("plain"))
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestJoinAndErrorf(t *testing.T) {
	first := New("first")
	joined := Join(first, Errorf("second %s", "cause"))

	assert.True(t, Is(joined, first))
	assert.Contains(t, fmt.Sprint(joined), "second cause")
}

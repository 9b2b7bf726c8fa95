package errs_test

import (
	"errors"
	"testing"

	"drivethru/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ctx"))
	assert.NoError(t, errs.Wrapf(nil, "ctx %d", 1))
}

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	marked := errs.Mark(errs.New("store said no"), sentinel)
	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(errs.Wrap(marked, "outer"), sentinel), "marks survive wrapping")
	assert.Equal(t, "store said no", marked.Error())

	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errs.New("boom"), "handling request")
	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "handling request")

	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 3, "0 keeps every line")
}

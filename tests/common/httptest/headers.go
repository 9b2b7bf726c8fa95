package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// values match as prefixes so "text/html" covers "text/html; charset=utf-8"
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.True(t, strings.HasPrefix(w.Header().Get(k), v), "header %s mismatch: %q", k, w.Header().Get(k))
	}
}

package httperr_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"drivethru/internal/handler/httperr"
	"drivethru/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cause := errs.New("store unavailable")
	httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	require.Len(t, c.Errors, 1)
	recorded := c.Errors.Last()
	assert.True(t, recorded.IsType(gin.ErrorTypePublic))
	assert.Equal(t, httperr.New(http.StatusInternalServerError, "Internal server error"), recorded.Meta)
	assert.Same(t, cause, recorded.Err)
	assert.Greater(t, len(errs.ExtractStackLines(recorded.Err, 0)), 1, "the cause keeps its stack trace")
}

func TestAbortWithErrorRejectsNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())

	assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad") })
}

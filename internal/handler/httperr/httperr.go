package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

func New(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// preserves original error for request logging
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Package httperr is the one error surface the REST handlers expose: a
// uniform JSON envelope for the terminal UI, with the original error pushed
// onto the gin error stack so the logging and error middleware see the cause.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every non-2xx reply. Status rides along for
// the error middleware and is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError replies with the envelope and records err on the context.
// msg is what the terminal operator sees; err stays internal.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

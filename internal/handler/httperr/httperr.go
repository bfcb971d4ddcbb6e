package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidState         = "INVALID_STATE"
	CodeConflict             = "CONFLICT"
	CodeExpired              = "EXPIRED"
	CodePaymentMethodMissing = "PAYMENT_METHOD_MISSING"
	CodePaymentFailed        = "PAYMENT_FAILED"
	CodeInternal             = "INTERNAL"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg, Code: code}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

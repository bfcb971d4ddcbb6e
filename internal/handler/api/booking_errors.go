package api

import (
	"log/slog"
	"net/http"

	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/handler/middleware"
	"pharmashift/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	kind   error
	status int
	code   string
}

// Order matters only for errors marked with more than one kind.
var errorMappings = []errorMapping{
	{errs.ErrUnauthorized, http.StatusUnauthorized, httperr.CodeUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound},
	{errs.ErrValidation, http.StatusBadRequest, httperr.CodeBadRequest},
	{errs.ErrInvalidState, http.StatusBadRequest, httperr.CodeInvalidState},
	{errs.ErrPaymentMethodMissing, http.StatusBadRequest, httperr.CodePaymentMethodMissing},
	{errs.ErrConflict, http.StatusConflict, httperr.CodeConflict},
	{errs.ErrExpired, http.StatusGone, httperr.CodeExpired},
	{errs.ErrPaymentFailed, http.StatusPaymentRequired, httperr.CodePaymentFailed},
}

// respondError writes the caller-facing message of a use case error. Anything
// that is not a UserError is reported as a generic 500.
func respondError(c *gin.Context, err error) {
	msg, isUser := errs.UserMessage(err)
	if isUser {
		for _, m := range errorMappings {
			if errs.Is(err, m.kind) {
				httperr.AbortWithError(c, m.status, err, m.code, msg)
				return
			}
		}
	}

	slog.Error("request failed",
		"request_id", middleware.GetRequestID(c),
		"path", c.FullPath(),
		"error", err,
		"stack", errs.ExtractStackLines(err, 12))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error")
}

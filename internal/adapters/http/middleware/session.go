package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// loginRequiredMessage tells an unauthenticated caller how to obtain a
// session.
const loginRequiredMessage = "login required: authenticate via POST /api/v1/auth/login"

// RequireSession returns middleware that rejects requests while no
// admin session token is stored. The login and health endpoints must
// stay outside this guard or nobody could ever log in.
func RequireSession(store ports.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || !store.Authenticated() {
			abortWithUnauthorized(c, loginRequiredMessage)
			return
		}

		c.Next()
	}
}

// abortWithUnauthorized aborts with a 401 Unauthorized response.
func abortWithUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	// Add trace ID if available
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}

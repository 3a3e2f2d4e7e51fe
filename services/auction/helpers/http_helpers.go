package helpers

import (
	"errors"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key under which the auth middleware stores
// the verified actor.
const IdentityKey = "identity"

// ActorFromContext returns the verified actor injected by the auth
// middleware.
func ActorFromContext(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	actor, ok := v.(auth.Identity)
	return actor, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", nil)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "Invalid or missing fields"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusNotFound, "Bid not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "User not granted access"
	case errors.Is(err, auctionerrors.ErrEmailTaken):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, auctionerrors.ErrBadPassword):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// RespondError maps the error onto the wire contract and logs it. For
// validation failures the offending field names travel in "details".
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, message, auctionerrors.FieldsOf(err))

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
	} else {
		utils.Warn(handlerName+": "+message, ctx)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

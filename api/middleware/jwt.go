package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/apperrors"
	"github.com/thesrcielos/CodingTracker/internal/user"
)

const (
	IdentityKey  = "user"
	verifyErrKey = "auth_verify_error"
	bearerPrefix = "Bearer "
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*user.Identity, error)
}

// SetupJWTMiddleware rejects requests without a bearer token with 403 and
// requests whose token fails verification with 401.
func SetupJWTMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  IdentityKey,
		TokenLookup: "header:Authorization:" + bearerPrefix,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			identity, err := verifier.Verify(c.Request().Context(), auth)
			if err != nil {
				c.Set(verifyErrKey, err)
				return nil, err
			}
			return identity, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			verifyErr, _ := c.Get(verifyErrKey).(error)
			if verifyErr == nil && presentedCredential(c) != "" {
				verifyErr = errors.New("unsupported authorization scheme")
			}
			if verifyErr == nil || errors.Is(verifyErr, user.ErrMissingToken) {
				return apperrors.NewAppError(http.StatusForbidden, "No token provided", err)
			}

			log.WithError(verifyErr).Warn("token verification failed")
			if appErr, ok := apperrors.As(verifyErr); ok {
				return appErr
			}
			return apperrors.Unauthorized("Invalid token", verifyErr).Exposed()
		},
	})
}

// CurrentIdentity returns the identity stored by the JWT middleware.
func CurrentIdentity(c echo.Context) (*user.Identity, error) {
	identity, ok := c.Get(IdentityKey).(*user.Identity)
	if !ok || identity == nil {
		return nil, apperrors.Unauthorized("Invalid token", errors.New("no identity in request context"))
	}
	return identity, nil
}

// presentedCredential returns the second word of the Authorization header
// regardless of scheme, or "" when the header carries no credential.
func presentedCredential(c echo.Context) string {
	parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// BearerToken returns the raw token from the Authorization header, or "".
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

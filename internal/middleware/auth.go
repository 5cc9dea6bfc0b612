package middleware

import (
	"context"
	"errors"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"clubsite/internal/apperrors"
	"clubsite/internal/auth"
	"clubsite/internal/model"
)

// UserContextKey is where LoadUser stores the resolved user on the echo context.
const UserContextKey = "currentUser"

// UserProvider resolves a user id to a user record.
type UserProvider interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// CurrentUser returns the user attached by LoadUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}

// LoadUser runs after the echo-jwt middleware has verified the bearer token.
// It resolves the token subject to a user record (password hash excluded from
// serialization) and attaches it to the context. An unknown subject is a 401:
// the token may be validly signed but its user no longer exists.
func LoadUser(users UserProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return unauthorized(c, "Not authorized, no token")
			}
			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return unauthorized(c, "Not authorized, token failed")
			}
			subject, err := claims.GetSubject()
			if err != nil {
				return unauthorized(c, "Not authorized, token failed")
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				return unauthorized(c, "Not authorized, token failed")
			}

			user, err := users.GetUser(c.Request().Context(), userID)
			if err != nil {
				return unauthorized(c, "Not authorized, token failed")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// AdminOnly rejects callers whose role does not authorize admin actions.
// It must run after LoadUser.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return unauthorized(c, "Not authorized, no token")
			}
			if decision := auth.Authorize(user, model.RoleAdmin); !decision.Allowed {
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{
					Message: "Not authorized as admin",
					Code:    "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// TokenErrorHandler converts token extraction and verification failures into
// the 401 envelope the rest of the API uses.
func TokenErrorHandler(c echo.Context, err error) error {
	if errors.Is(err, echojwt.ErrJWTMissing) {
		return unauthorized(c, "Not authorized, no token")
	}
	return unauthorized(c, "Not authorized, token failed")
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Message: message,
		Code:    "UNAUTHORIZED",
	})
}

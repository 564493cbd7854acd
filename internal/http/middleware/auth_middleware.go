package middleware

import (
	"strings"

	"sharednotes/internal/domain/entity"
	"sharednotes/internal/utils/apierror"
	"sharednotes/internal/utils/tokens"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
	Secret   string
}

// NewAuthMiddleware is the sole authorization boundary for note and search
// routes: it maps the bearer token to a user record and attaches it to the
// request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			token := extractBearer(raw)
			if token == "" {
				return c.JSON(apierror.MissingLoginError.Code(), apierror.MissingLoginError)
			}

			userID, err := tokens.Parse(token, cfg.Secret)
			if err != nil {
				return c.JSON(apierror.InvalidTokenError.Code(), apierror.InvalidTokenError)
			}

			user, err := cfg.UserRepo.FindByID(userID)
			if err != nil {
				log.Errorf("failed to resolve token user %d: %v", userID, err)
				return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
			}

			if user == nil {
				// Token outlived the account.
				return c.JSON(apierror.UserNotFoundError.Code(), apierror.UserNotFoundError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

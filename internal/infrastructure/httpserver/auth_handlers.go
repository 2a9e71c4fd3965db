package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/core/domain/user"
	"github.com/govargas/bada/internal/infrastructure/httpserver/helpers"
)

// register creates a new account.
func (s *Server) register(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody"})
	}
	if details := creds.Validate(); details != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody", Details: details})
	}

	if err := s.authSvc.Register(c.Request().Context(), &creds); err != nil {
		if errors.Is(err, user.ErrEmailInUse) {
			return c.JSON(http.StatusConflict, errorBody{Error: "EmailInUse"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]bool{"ok": true})
}

// login verifies credentials and returns a bearer token.
func (s *Server) login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody"})
	}
	if details := creds.Validate(); details != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody", Details: details})
	}

	token, err := s.authSvc.Login(c.Request().Context(), &creds)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorBody{Error: "InvalidCredentials"})
		}
		return err
	}
	return c.JSON(http.StatusOK, token)
}

// me echoes the verified identity of the bearer token.
func (s *Server) me(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	email, err := helpers.GetUserEmailFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]auth.Identity{
		"user": {Sub: userID.String(), Email: email},
	})
}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/govargas/bada/internal/core/domain/favorite"
	"github.com/govargas/bada/internal/infrastructure/httpserver/helpers"
)

// listFavorites returns the caller's favorites in display order.
func (s *Server) listFavorites(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	items, err := s.favoriteSvc.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// addFavorite creates a favorite for the caller. A duplicate beach is the
// one expected, recoverable conflict and gets its own signal.
func (s *Server) addFavorite(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req favorite.CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody"})
	}
	if details := req.Validate(); details != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody", Details: details})
	}

	created, err := s.favoriteSvc.Add(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, favorite.ErrAlreadyFavorited) {
			return c.JSON(http.StatusConflict, errorBody{Error: "AlreadyFavorited"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// removeFavorite deletes one of the caller's favorites by store id.
func (s *Server) removeFavorite(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	idStr := c.Param("id")
	if idStr == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "MissingId"})
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidId"})
	}

	if err := s.favoriteSvc.RemoveByID(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, favorite.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorBody{Error: "NotFound"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// removeFavoriteByBeach deletes one of the caller's favorites by beach id.
func (s *Server) removeFavoriteByBeach(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	beachID := c.Param("beachId")
	if beachID == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "MissingId"})
	}

	if err := s.favoriteSvc.RemoveByBeachID(c.Request().Context(), userID, beachID); err != nil {
		if errors.Is(err, favorite.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorBody{Error: "NotFound"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// reorderFavorites applies the caller's desired display order.
func (s *Server) reorderFavorites(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req favorite.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody"})
	}
	if req.Order == nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "InvalidBody", Details: map[string]string{"order": "order must be an array of beach ids"}})
	}

	if err := s.favoriteSvc.Reorder(c.Request().Context(), userID, req.Order); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

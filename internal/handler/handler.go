package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clubsite/internal/apperrors"
)

// MessageResponse is the body of delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return apperrors.FromValidator(err)
	}
	return nil
}

// parseID parses the :id path parameter.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation("invalid id", "id")
	}
	return id, nil
}

// respondError maps a domain error to its HTTP status and JSON body.
func respondError(c echo.Context, err error) error {
	status, body := apperrors.MapToHTTP(err)
	return c.JSON(status, body)
}

func deleted(c echo.Context, resource string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: resource + " deleted successfully"})
}

package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/wikiquiz/wikiquiz-backend/internal/apierr"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondError(c *gin.Context, apiErr *apierr.Error) {
  status := apiErr.Status
  if status == 0 {
    status = http.StatusInternalServerError
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: apiErr.Error(),
      Code:    apiErr.Code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deep-summarizer/config"
	"deep-summarizer/dto"
	"deep-summarizer/extractor"
	"deep-summarizer/llm"
	"deep-summarizer/logger"
	"deep-summarizer/services"
)

// statusFor maps a service error to the HTTP status and body returned to the
// caller.
func statusFor(err error) (int, dto.ErrorResponseDTO) {
	var inputErr *services.InputError
	var extractErr *extractor.ExtractionError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, dto.ErrorResponseDTO{Error: inputErr.Message}
	case errors.As(err, &extractErr):
		needsManual := extractErr.NeedsManualInput
		return http.StatusUnprocessableEntity, dto.ErrorResponseDTO{Error: extractErr.Message, NeedsManualInput: &needsManual}
	case errors.Is(err, config.ErrMissingSetting):
		return http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()}
	case errors.Is(err, llm.ErrQuotaExceeded):
		return http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.ErrorResponseDTO{Error: err.Error()}
	default:
		return http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()}
	}
}

func respondError(c *gin.Context, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.Fields{"path": c.FullPath(), "status": status, "error": err.Error()})
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

// bindJSON decodes the body into dst and answers 400 when it is not JSON.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid JSON body"})
		return false
	}
	return true
}

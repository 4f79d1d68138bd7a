package response

import (
	"errors"
	"net/http"

	"github.com/shiftlens/overlap-backend-go/internal/domain/overlap"
	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrDocumentUnreadable):
		BadRequest(w, "Document cannot be decoded as a PDF", nil)
	case errors.Is(err, schedule.ErrUnknownProfile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Overlap domain errors
	case errors.Is(err, overlap.ErrSelectionTooLarge):
		BadRequest(w, "Too many employees selected", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

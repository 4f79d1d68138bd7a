package schedule

import "errors"

var (
	// Document Errors
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrDocumentUnreadable = errors.New("document cannot be decoded as a PDF")

	// Parse Profile Errors
	ErrUnknownProfile = errors.New("unknown parse profile")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)

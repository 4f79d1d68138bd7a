package overlap

import "errors"

var (
	// ErrSelectionTooLarge guards the combination search: relaxed-quorum
	// enumeration is exponential in the selection size, so selections above
	// the configured cap are rejected instead of silently degrading.
	ErrSelectionTooLarge = errors.New("too many employees selected")
)

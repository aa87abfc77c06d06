package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrRoomUnavailable   = errors.New("room not available for the requested dates")
	ErrConflict          = errors.New("reservation rejected by the store: concurrent booking")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCorruptState      = errors.New("reservation state is corrupt")
	ErrNotFound          = errors.New("reservation not found")
)

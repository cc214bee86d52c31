package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSenderEmail   = errors.New("invalid sender email")
	ErrInvalidReceiverEmail = errors.New("invalid receiver email")
	ErrEmptyBiodataID       = errors.New("receiver biodata id is required")
	ErrEmptyObjectID        = errors.New("receiver object id is required")
	ErrInvalidStatus        = errors.New("invalid request status")
	ErrInvalidEmail         = errors.New("invalid email")
)

package validators

import (
	"context"
	"strings"

	"github.com/fahim1105/seu-matrimony/models"
)

// Field names accepted by RequestValidator.
const (
	FieldSenderEmail   = "sender_email"
	FieldReceiverEmail = "receiver_email"
	FieldBiodataID     = "receiver_biodata_id"
	FieldObjectID      = "receiver_object_id"
	FieldStatus        = "status"

	// FieldEmail targets the email of a registration body.
	FieldEmail = "email"
)

var allowedStatuses = []models.RequestStatus{
	"",
	models.RequestStatusPending,
	models.RequestStatusAccepted,
	models.RequestStatusRejected,
}

// RequestValidator validates models.PendingRequestInput and
// models.RegistrationInput, by value or by pointer.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PendingRequestInput:
		return v.validateRequest(ctx, value, fields...)
	case *models.PendingRequestInput:
		return v.validateRequest(ctx, *value, fields...)
	case models.RegistrationInput:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationInput:
		return v.validateRegistration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRequest(_ context.Context, in models.PendingRequestInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderEmail, FieldReceiverEmail, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldSenderEmail:
			if !isEmail(in.SenderEmail) {
				return ErrInvalidSenderEmail
			}
		case FieldReceiverEmail:
			if !isEmail(in.ReceiverEmail) {
				return ErrInvalidReceiverEmail
			}
		case FieldBiodataID:
			if strings.TrimSpace(in.ReceiverBiodataID) == "" {
				return ErrEmptyBiodataID
			}
		case FieldObjectID:
			if strings.TrimSpace(in.ReceiverObjectID) == "" {
				return ErrEmptyObjectID
			}
		case FieldStatus:
			if !validStatus(in.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegistration(_ context.Context, in models.RegistrationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(in.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail only checks for a non-empty local part and domain.
func isEmail(s string) bool {
	local, domain, ok := strings.Cut(strings.TrimSpace(s), "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}

func validStatus(s models.RequestStatus) bool {
	for _, allowed := range allowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

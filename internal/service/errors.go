package service

import "fmt"

const (
	CodeParentNotFound  = "PARENT_NOT_FOUND"
	CodeContactMismatch = "CONTACT_MISMATCH"
	CodeValidation      = "VALIDATION_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewParentNotFound(dealID int64) *BusinessError {
	return NewBusinessError(CodeParentNotFound,
		fmt.Sprintf("property deal %d does not exist", dealID),
		ToDetail("property_deal_id", dealID),
	)
}

// NewContactMismatch also covers a contact id that does not exist at all.
func NewContactMismatch(contactID, dealID int64) *BusinessError {
	return NewBusinessError(CodeContactMismatch,
		fmt.Sprintf("contact %d does not belong to property deal %d", contactID, dealID),
		ToDetail("contact_id", contactID),
		ToDetail("property_deal_id", dealID),
	)
}

func NewValidationError(field, reason string) *BusinessError {
	return NewBusinessError(CodeValidation,
		fmt.Sprintf("invalid value of field '%s': %s", field, reason),
		ToDetail("field", field),
		ToDetail("reason", reason),
	)
}

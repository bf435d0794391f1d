package booking

import "fmt"

// ConvertError is the typed error surfaced by conversion operations.
type ConvertError struct {
	Code    string
	Message string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrAlreadyConverted rejects a second conversion of the same offer.
func ErrAlreadyConverted(offerID string) error {
	return &ConvertError{
		Code:    "alreadyConverted",
		Message: fmt.Sprintf("offer %s has already been converted to a booking", offerID),
	}
}

func ErrNotFound(kind, id string) error {
	return &ConvertError{Code: "notFound", Message: fmt.Sprintf("%s %s not found", kind, id)}
}

func ErrEmptySelection(offerID string) error {
	return &ConvertError{Code: "emptySelection", Message: fmt.Sprintf("no line items selected from offer %s", offerID)}
}

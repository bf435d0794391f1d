package offer

import "fmt"

// OfferError is the typed error surfaced by offer operations.
type OfferError struct {
	Code    string
	Message string
}

func (e *OfferError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrNotFound(id string) error {
	return &OfferError{Code: "offerNotFound", Message: fmt.Sprintf("offer %s not found", id)}
}

// ErrOfferBooked guards the append-only contract: once booked, an offer
// is frozen history and must never be edited or re-saved.
func ErrOfferBooked(id string) error {
	return &OfferError{Code: "offerBooked", Message: fmt.Sprintf("offer %s is booked and can no longer be modified", id)}
}

// ErrPriceUnavailable routes the caller to the manual-entry path; it is
// a state, not a failure of the resolver.
func ErrPriceUnavailable(serviceRef string) error {
	return &OfferError{Code: "priceUnavailable", Message: fmt.Sprintf("no price on file for service %s; supply a manual price", serviceRef)}
}

func ErrInvalidInput(msg string) error {
	return &OfferError{Code: "invalidInput", Message: msg}
}

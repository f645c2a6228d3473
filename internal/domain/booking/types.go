package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid payment status")

// Status is the payment state of a booking. Both transitions are permitted;
// there is no terminal state.
type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPaid:
		return true
	default:
		return false
	}
}

// ParseStatus validates a caller-supplied status. Creation never defaults it:
// a request without an explicit status is invalid.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

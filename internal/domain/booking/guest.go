package booking

import (
	"errors"
	"strings"
)

const (
	MaxGuestNameLength  = 255
	MaxGuestPhoneLength = 20
)

var (
	ErrGuestNameRequired  = errors.New("guest name is required")
	ErrGuestNameTooLong   = errors.New("guest name exceeds maximum length")
	ErrGuestPhoneRequired = errors.New("guest phone is required")
	ErrGuestPhoneTooLong  = errors.New("guest phone exceeds maximum length")
)

type GuestName struct {
	value string
}

func NewGuestName(value string) (GuestName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestName{}, ErrGuestNameRequired
	}
	if len(trimmed) > MaxGuestNameLength {
		return GuestName{}, ErrGuestNameTooLong
	}
	return GuestName{value: trimmed}, nil
}

func (n GuestName) String() string { return n.value }

type GuestPhone struct {
	value string
}

func NewGuestPhone(value string) (GuestPhone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return GuestPhone{}, ErrGuestPhoneRequired
	}
	if len(trimmed) > MaxGuestPhoneLength {
		return GuestPhone{}, ErrGuestPhoneTooLong
	}
	return GuestPhone{value: trimmed}, nil
}

func (p GuestPhone) String() string { return p.value }

package giftcard

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCardNumber = errors.New("invalid gift card number format")
	ErrInvalidStatus     = errors.New("gift card status must be active or disabled")
)

var cardNumberRegex = regexp.MustCompile(`^[A-Z0-9-]{8,32}$`)

type Number string

func CanonicalNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func NewNumber(s string) (Number, error) {
	n := CanonicalNumber(s)
	if !cardNumberRegex.MatchString(n) {
		return Number(""), ErrInvalidCardNumber
	}
	return Number(n), nil
}

// GenerateNumber returns a random number in the form GC-XXXX-XXXX-XXXX.
func GenerateNumber() (Number, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	h := strings.ToUpper(hex.EncodeToString(buf))
	return Number("GC-" + h[0:4] + "-" + h[4:8] + "-" + h[8:12]), nil
}

func (n Number) String() string {
	return string(n)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

func NewStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusDisabled:
		return StatusDisabled, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

package order

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

type Number string

// GenerateNumber builds ORD-YYYYMMDD-XXXXXXXX. Uniqueness is enforced by the
// database; callers regenerate on a duplicate key.
func GenerateNumber(now time.Time) (Number, error) {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	suffix := strings.ToUpper(hex.EncodeToString(randomBytes))
	return Number("ORD-" + now.UTC().Format("20060102") + "-" + suffix), nil
}

// CanonicalNumber normalizes user-typed order numbers for lookup.
func CanonicalNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (n Number) String() string {
	return string(n)
}

package coupon

import "time"

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusNotStarted Status = "not_started"
	StatusExpired    Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusOf is the back-office display status. Expiry wins over the manual flag.
func StatusOf(c *Coupon, now time.Time) Status {
	return DeriveStatus(c.isActive, c.window.From(), c.window.Until(), now)
}

func DeriveStatus(isActive bool, validFrom, validUntil *time.Time, now time.Time) Status {
	switch {
	case validUntil != nil && now.After(*validUntil):
		return StatusExpired
	case validFrom != nil && now.Before(*validFrom):
		return StatusNotStarted
	case isActive:
		return StatusActive
	default:
		return StatusInactive
	}
}

package coupon

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMinOrderAmount = errors.New("minimum order amount cannot be negative")
	ErrInvalidUsageLimit     = errors.New("usage limit must be a positive integer")
	ErrUsageLimitBelowUsed   = errors.New("usage limit cannot be lower than the current usage count")
	ErrDescriptionTooLong    = errors.New("description must be at most 500 characters")
)

const maxDescriptionLength = 500

type Coupon struct {
	id             uuid.UUID
	code           Code
	description    string
	discount       Discount
	minOrderAmount decimal.Decimal
	usageLimit     *int
	usedCount      int
	window         Window
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCoupon(
	code string,
	description string,
	discount Discount,
	minOrderAmount decimal.Decimal,
	usageLimit *int,
	window Window,
	isActive bool,
	now time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	c := &Coupon{
		id:        uuid.New(),
		code:      couponCode,
		isActive:  isActive,
		createdAt: now,
	}
	if err := c.Revise(description, discount, minOrderAmount, usageLimit, window, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Reconstruct rebuilds a persisted coupon without re-running creation rules.
func Reconstruct(
	id uuid.UUID,
	code Code,
	description string,
	discount Discount,
	minOrderAmount decimal.Decimal,
	usageLimit *int,
	usedCount int,
	window Window,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:             id,
		code:           code,
		description:    description,
		discount:       discount,
		minOrderAmount: minOrderAmount,
		usageLimit:     usageLimit,
		usedCount:      usedCount,
		window:         window,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Revise replaces the admin-editable terms. The code and usage counter are immutable.
func (c *Coupon) Revise(
	description string,
	discount Discount,
	minOrderAmount decimal.Decimal,
	usageLimit *int,
	window Window,
	now time.Time,
) error {
	description = strings.TrimSpace(description)
	if len([]rune(description)) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if minOrderAmount.IsNegative() {
		return ErrInvalidMinOrderAmount
	}
	if usageLimit != nil {
		if *usageLimit <= 0 || *usageLimit > math.MaxInt32 {
			return ErrInvalidUsageLimit
		}
		if *usageLimit < c.usedCount {
			return ErrUsageLimitBelowUsed
		}
		limit := *usageLimit
		usageLimit = &limit
	}

	c.description = description
	c.discount = discount
	c.minOrderAmount = minOrderAmount
	c.usageLimit = usageLimit
	c.window = window
	c.updatedAt = now
	return nil
}

func (c *Coupon) Activate(now time.Time) {
	c.isActive = true
	c.updatedAt = now
}

func (c *Coupon) Deactivate(now time.Time) {
	c.isActive = false
	c.updatedAt = now
}

func (c *Coupon) LimitReached() bool {
	return c.usageLimit != nil && c.usedCount >= *c.usageLimit
}

func (c *Coupon) IsUsableAt(now time.Time) bool {
	return c.isActive && !c.window.NotStartedAt(now) && !c.window.ExpiredAt(now) && !c.LimitReached()
}

func (c *Coupon) ID() uuid.UUID                   { return c.id }
func (c *Coupon) Code() Code                      { return c.code }
func (c *Coupon) Description() string             { return c.description }
func (c *Coupon) Discount() Discount              { return c.discount }
func (c *Coupon) MinOrderAmount() decimal.Decimal { return c.minOrderAmount }
func (c *Coupon) UsageLimit() *int                { return c.usageLimit }
func (c *Coupon) UsedCount() int                  { return c.usedCount }
func (c *Coupon) Window() Window                  { return c.window }
func (c *Coupon) ValidFrom() *time.Time           { return c.window.From() }
func (c *Coupon) ValidUntil() *time.Time          { return c.window.Until() }
func (c *Coupon) IsActive() bool                  { return c.isActive }
func (c *Coupon) CreatedAt() time.Time            { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time            { return c.updatedAt }

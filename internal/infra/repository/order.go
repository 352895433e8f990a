package repository

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/order"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrderSQL = `
INSERT INTO orders (
    id, order_number, status, customer_name, customer_email, customer_phone,
    shipping_address, payment_method, subtotal, discount_amount, gift_card_amount,
    shipping_fee, final_amount, coupon_code, gift_card_number, note, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

// Items go in one round trip via parallel arrays.
const insertOrderItemsSQL = `
INSERT INTO order_items (order_id, position, product_id, name, unit_price, quantity, size, color, image_url, product_url)
SELECT $1, t.position, t.product_id, t.name, t.unit_price, t.quantity, t.size, t.color, t.image_url, t.product_url
FROM unnest($2::int[], $3::text[], $4::text[], $5::numeric[], $6::int[], $7::text[], $8::text[], $9::text[], $10::text[])
    AS t(position, product_id, name, unit_price, quantity, size, color, image_url, product_url)`

const updateOrderStatusSQL = `
UPDATE orders SET status = $2, updated_at = $3
WHERE order_number = $1`

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create fails with infra.KindDuplicateKey when the order number is already taken.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	totals := o.Totals()
	customer := o.Customer()

	var couponCode, giftCardNumber pgtype.Text
	if c := o.CouponCode(); c != nil {
		couponCode = pgtype.Text{String: c.String(), Valid: true}
	}
	if g := o.GiftCardNumber(); g != nil {
		giftCardNumber = pgtype.Text{String: g.String(), Valid: true}
	}

	_, err := tx.Exec(ctx, insertOrderSQL,
		o.ID(), o.Number().String(), o.Status().String(),
		customer.Name(), customer.Email(), customer.Phone(), customer.Address(),
		o.PaymentMethod().String(),
		pgconv.DecimalToNumeric(totals.Subtotal),
		pgconv.DecimalToNumeric(totals.Discount),
		pgconv.DecimalToNumeric(totals.GiftCard),
		pgconv.DecimalToNumeric(totals.Shipping),
		pgconv.DecimalToNumeric(totals.Final),
		couponCode, giftCardNumber, o.Note(),
		o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	items := o.Items()
	n := len(items)
	positions := make([]int32, n)
	productIDs := make([]string, n)
	names := make([]string, n)
	unitPrices := make([]pgtype.Numeric, n)
	quantities := make([]int32, n)
	sizes := make([]string, n)
	colors := make([]string, n)
	imageURLs := make([]string, n)
	productURLs := make([]string, n)
	for i, it := range items {
		opts := it.Options()
		positions[i] = int32(i + 1) // #nosec G115 -- bounded by the line item limit
		productIDs[i] = it.ProductID()
		names[i] = it.Name()
		unitPrices[i] = pgconv.DecimalToNumeric(it.UnitPrice())
		quantities[i] = int32(it.Quantity()) // #nosec G115 -- bounded by the quantity limit
		sizes[i] = opts.Size
		colors[i] = opts.Color
		imageURLs[i] = opts.ImageURL
		productURLs[i] = opts.ProductURL
	}

	_, err = tx.Exec(ctx, insertOrderItemsSQL,
		o.ID(), positions, productIDs, names, unitPrices, quantities, sizes, colors, imageURLs, productURLs,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order items", err)
	}
	return nil
}

// UpdateStatus returns false when no order has the number.
func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, number string, status order.Status, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, updateOrderStatusSQL, number, status.String(), at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order status", err)
	}
	return tag.RowsAffected() == 1, nil
}

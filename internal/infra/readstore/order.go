package readstore

import (
	"context"

	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"
	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const orderColumns = `
    id, order_number, status, customer_name, customer_email, customer_phone, shipping_address,
    payment_method, subtotal, discount_amount, gift_card_amount, shipping_fee, final_amount,
    coupon_code, gift_card_number, note, created_at, updated_at`

const orderFilterClause = `
    ($1::text IS NULL OR status = $1)
    AND ($2::text IS NULL OR order_number ILIKE $2 OR customer_email ILIKE $2 OR customer_name ILIKE $2)
    AND ($3::timestamptz IS NULL OR created_at >= $3)
    AND ($4::timestamptz IS NULL OR created_at < $4)`

const getOrderByNumberSQL = `SELECT` + orderColumns + ` FROM orders WHERE order_number = $1`

const listOrdersSQL = `
SELECT o.id, o.order_number, o.status, o.customer_name, o.customer_email, o.payment_method,
       (SELECT count(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
       o.final_amount, o.coupon_code, o.created_at
FROM orders o
WHERE` + orderFilterClause + `
    AND ($5::timestamptz IS NULL OR (o.created_at, o.id) < ($5, $6::uuid))
ORDER BY o.created_at DESC, o.id DESC
LIMIT $7`

const exportOrdersSQL = `SELECT` + orderColumns + `
FROM orders
WHERE` + orderFilterClause + `
ORDER BY created_at DESC, id DESC
LIMIT $5`

const getOrderItemsSQL = `
SELECT order_id, product_id, name, unit_price, quantity, size, color, image_url, product_url
FROM order_items
WHERE order_id = ANY($1::uuid[])
ORDER BY order_id, position`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	view, err := scanOrderView(r.db.QueryRow(ctx, getOrderByNumberSQL, number))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by number", err)
	}
	if err := r.attachItems(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *OrderReadStore) List(ctx context.Context, filters queries.OrderFilters, after *queries.Keyset, limit int32) ([]*queries.OrderListItem, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listOrdersSQL,
		pgconv.StringPtrToPgtype(filters.Status), containsPattern(filters.Search),
		pgconv.TimePtrToPgtype(filters.From), pgconv.TimePtrToPgtype(filters.Until),
		afterAt, afterID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			it         queries.OrderListItem
			final      pgtype.Numeric
			couponCode pgtype.Text
			itemCount  int64
		)
		if err := rows.Scan(&it.ID, &it.OrderNumber, &it.Status, &it.CustomerName, &it.CustomerEmail,
			&it.PaymentMethod, &itemCount, &final, &couponCode, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		if it.FinalAmount, err = pgconv.DecimalFromNumeric(final); err != nil {
			return nil, infra.WrapRepoErr("invalid order amount", err)
		}
		it.ItemCount = int(itemCount)
		it.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, nil
}

func (r *OrderReadStore) ListForExport(ctx context.Context, filters queries.OrderFilters, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, exportOrdersSQL,
		pgconv.StringPtrToPgtype(filters.Status), containsPattern(filters.Search),
		pgconv.TimePtrToPgtype(filters.From), pgconv.TimePtrToPgtype(filters.Until),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders for export", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	ids := make([]pgtype.UUID, 0, len(views))
	for _, v := range views {
		v.Items = []*queries.OrderItemView{}
		byID[v.ID] = v
		ids = append(ids, pgtype.UUID{Bytes: v.ID, Valid: true})
	}

	rows, err := r.db.Query(ctx, getOrderItemsSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			it        queries.OrderItemView
			unitPrice pgtype.Numeric
			quantity  int32
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &unitPrice, &quantity,
			&it.Size, &it.Color, &it.ImageURL, &it.ProductURL); err != nil {
			return infra.WrapRepoErr("failed to scan order item", err)
		}
		if it.UnitPrice, err = pgconv.DecimalFromNumeric(unitPrice); err != nil {
			return infra.WrapRepoErr("invalid order item price", err)
		}
		it.Quantity = int(quantity)
		it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if v, ok := byID[orderID]; ok {
			v.Items = append(v.Items, &it)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate order items", err)
	}
	return nil
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		v                                         queries.OrderView
		subtotal, discount, giftCard, ship, final pgtype.Numeric
		couponCode, giftCardNumber                pgtype.Text
	)
	err := row.Scan(&v.ID, &v.OrderNumber, &v.Status, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.ShippingAddress, &v.PaymentMethod, &subtotal, &discount, &giftCard, &ship, &final,
		&couponCode, &giftCardNumber, &v.Note, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, m := range []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&v.Subtotal, subtotal},
		{&v.DiscountAmount, discount},
		{&v.GiftCardAmount, giftCard},
		{&v.ShippingFee, ship},
		{&v.FinalAmount, final},
	} {
		d, err := pgconv.DecimalFromNumeric(m.src)
		if err != nil {
			return nil, err
		}
		*m.dst = d
	}
	v.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	v.GiftCardNumber = pgconv.StringPtrFromPgtype(giftCardNumber)
	return &v, nil
}

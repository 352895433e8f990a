package export

import (
	"io"
	"strings"

	"gin-order-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

const (
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	moneyFormat   = "#,##0.00"
	timestampFmt  = "2006-01-02 15:04:05"
	ordersSheet   = "Orders"
	lineItemSheet = "Line items"
)

var orderHeaders = []string{
	"Order number", "Placed at (UTC)", "Status", "Customer", "Email", "Phone", "Address",
	"Payment method", "Subtotal", "Discount", "Gift card", "Shipping", "Final",
	"Coupon", "Gift card number", "Items", "Note",
}

var itemHeaders = []string{
	"Order number", "Product ID", "Name", "Size", "Color", "Unit price", "Quantity", "Line total",
}

// WriteOrders renders one sheet of orders and one sheet of their line items.
func WriteOrders(w io.Writer, orders []*queries.OrderView) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(ordersSheet)
	if err != nil {
		return err
	}
	items, err := file.AddSheet(lineItemSheet)
	if err != nil {
		return err
	}

	addHeader(sheet, orderHeaders)
	addHeader(items, itemHeaders)

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.OrderNumber)
		row.AddCell().SetString(o.CreatedAt.UTC().Format(timestampFmt))
		row.AddCell().SetString(o.Status)
		row.AddCell().SetString(o.CustomerName)
		row.AddCell().SetString(o.CustomerEmail)
		row.AddCell().SetString(o.CustomerPhone)
		row.AddCell().SetString(o.ShippingAddress)
		row.AddCell().SetString(o.PaymentMethod)
		addMoney(row, o.Subtotal)
		addMoney(row, o.DiscountAmount)
		addMoney(row, o.GiftCardAmount)
		addMoney(row, o.ShippingFee)
		addMoney(row, o.FinalAmount)
		row.AddCell().SetString(deref(o.CouponCode))
		row.AddCell().SetString(deref(o.GiftCardNumber))
		row.AddCell().SetInt(len(o.Items))
		row.AddCell().SetString(strings.TrimSpace(o.Note))

		for _, it := range o.Items {
			r := items.AddRow()
			r.AddCell().SetString(o.OrderNumber)
			r.AddCell().SetString(it.ProductID)
			r.AddCell().SetString(it.Name)
			r.AddCell().SetString(it.Size)
			r.AddCell().SetString(it.Color)
			addMoney(r, it.UnitPrice)
			r.AddCell().SetInt(it.Quantity)
			addMoney(r, it.LineTotal)
		}
	}

	return file.Write(w)
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
}

func addMoney(row *xlsx.Row, d decimal.Decimal) {
	f, _ := d.Round(2).Float64()
	row.AddCell().SetFloatWithFormat(f, moneyFormat)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

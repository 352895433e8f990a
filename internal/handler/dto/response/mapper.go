package response

import (
	"gin-order-admin/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is rendered with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var moneyConverters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return Money(src.(decimal.Decimal)), nil
		},
	},
	{
		SrcType: (*decimal.Decimal)(nil),
		DstType: (*string)(nil),
		Fn: func(src any) (any, error) {
			d, _ := src.(*decimal.Decimal)
			if d == nil {
				return (*string)(nil), nil
			}
			s := Money(*d)
			return &s, nil
		},
	},
}

func mapInto(to, from any) error {
	return copier.CopyWithOption(to, from, copier.Option{
		DeepCopy:   true,
		Converters: moneyConverters,
	})
}

func nextCursor(c *queries.Cursor) string {
	if c == nil {
		return ""
	}
	return c.After
}

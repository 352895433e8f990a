package request

import "gin-order-admin/internal/usecase/queries"

type PageQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Cursor string `form:"cursor"`
}

func (p PageQuery) ToCursor() *queries.Cursor {
	if p.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: p.Cursor}
}

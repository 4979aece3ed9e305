package model

type CommonParam struct {
	Operator uint64
}

type CommonParamInterface interface {
	SetOperator(op uint64)
}

func (p *CommonParam) SetOperator(op uint64) {
	p.Operator = op
}

type PageParam struct {
	Page     int `form:"page" json:"page" binding:"required,min=1"`
	PageSize int `form:"page_size" json:"page_size" binding:"required,min=10,max=100"`
}

func (p PageParam) Offset() int {
	return (p.Page - 1) * p.PageSize
}

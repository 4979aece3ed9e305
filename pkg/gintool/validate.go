package gintool

import (
	"github.com/go-playground/validator/v10"
)

// gin 的绑定校验在启动时被关闭, 绑定完 uri/query/json 后统一在这里校验
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// Validate 按 binding 标签校验参数
func Validate(param any) error {
	return validate.Struct(param)
}

package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"futsal-booking/backend/internal/model"
)

var once sync.Once

// Register 向 gin 的校验器注册自定义规则，重复调用无副作用
func Register() {
	once.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = RegisterOn(v)
		}
	})
}

// RegisterOn 在指定校验器上注册自定义规则
//
//	hourtime: 24 小时制整点 "HH:00"
func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation("hourtime", hourTime)
}

func hourTime(fl validator.FieldLevel) bool {
	_, err := model.ParseHourTime(fl.Field().String())
	return err == nil
}

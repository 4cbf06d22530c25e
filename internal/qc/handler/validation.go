package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/MrSingh0729/transs-flow-final/internal/qc/entity"
)

// 自定义binding校验器，供清单实体的binding标签使用
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// shiftname: 班次只能是Day或Night
	v.RegisterValidation("shiftname", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == entity.ShiftDay || s == entity.ShiftNight
	})

	// checkanswer: 检查项答案只能是OK / Not OK / NA
	v.RegisterValidation("checkanswer", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == entity.CheckOK || s == entity.CheckNotOK || s == entity.CheckNA
	})
}

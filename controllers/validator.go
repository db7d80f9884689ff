package controllers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding validators on gin's validator
// engine. Call once at startup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// discountpercent: a discount is a percentage between 0 and 100
		_ = v.RegisterValidation("discountpercent", func(fl validator.FieldLevel) bool {
			d := fl.Field().Float()
			return d >= 0 && d <= 100
		})
	}
}

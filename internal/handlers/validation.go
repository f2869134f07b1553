package handlers

import (
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/utils/timestamps"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return timestamps.IsDate(fl.Field().String())
	})
}

package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

// RegisterValidations attaches the custom binding validations to gin's
// validator engine. Must run before any route handles traffic.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("stage", validStage)
	}
}

// validStage accepts the five reviewing stage names.
func validStage(fl validator.FieldLevel) bool {
	return domain.ValidStage(domain.Stage(fl.Field().String()))
}

package validator

import (
	"github.com/go-playground/validator/v10"
)

// supportedImageMimes is the upload allow-list for meeting images
var supportedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance with the custom rules registered
func New() *CustomValidator {
	v := validator.New()

	// imagemime accepts only the image types the OCR pipeline supports
	_ = v.RegisterValidation("imagemime", func(fl validator.FieldLevel) bool {
		return supportedImageMimes[fl.Field().String()]
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

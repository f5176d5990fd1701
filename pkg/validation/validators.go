package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Phone input keeps it permissive: digits plus the separators people
// actually type (+ - space parens).
var phoneRegex = regexp.MustCompile(`^[0-9+\-\s()]*$`)

// New returns a validator configured for this API: custom rules registered
// and error fields reported under their JSON names.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone_chars", PhoneChars)

	return v
}

// PhoneChars validates a phone number's character set.
func PhoneChars(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

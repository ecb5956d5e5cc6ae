package waitlist

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagBlankOrEmail accepts an empty or whitespace-only value, which the
// service treats as nothing to submit, and otherwise requires a valid address.
const TagBlankOrEmail = "blank_or_email"

var registerOnce sync.Once

// RegisterValidators adds the waitlist tags to gin's validator. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation(TagBlankOrEmail, func(fl validator.FieldLevel) bool {
			email := strings.TrimSpace(fl.Field().String())
			return email == "" || v.Var(email, "email") == nil
		})
	})
}

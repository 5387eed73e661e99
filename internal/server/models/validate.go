package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jand6793/chat-website-backend/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on v and wraps the first violation into
// common.ErrValidation so callers can match it with errors.Is.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: field %s failed on %s", common.ErrValidation, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, err)
}

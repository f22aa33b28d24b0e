package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	apperrors "lfg-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError turns validator output into an apperrors.ValidationError
// naming the first offending field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
	}
	return apperrors.NewValidationError(snakeCase(fe.Field()), msg)
}

func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

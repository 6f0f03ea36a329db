// internal/model/validate.go
package model

import (
	"net/mail"
	"strings"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return appErrors.NewValidation("%s is required", field)
	}
	return nil
}

func requireRef(field string, id int64) error {
	if id <= 0 {
		return appErrors.NewValidation("%s is required", field)
	}
	return nil
}

func requireDate(field string, d Date) error {
	if d.IsZero() {
		return appErrors.NewValidation("%s is required", field)
	}
	return nil
}

func nonNegativeMoney(field string, m Money) error {
	if m.IsNegative() {
		return appErrors.NewValidation("%s must not be negative", field)
	}
	return nil
}

func nonNegativeCount(field string, n int64) error {
	if n < 0 {
		return appErrors.NewValidation("%s must not be negative", field)
	}
	return nil
}

func optionalEmail(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return appErrors.NewValidation("%s is not a valid email address", field)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

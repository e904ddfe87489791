package usecase

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/ratedir/ratedir/internal/domain/errors"
)

const (
	nameMinLen    = 20
	nameMaxLen    = 60
	addressMaxLen = 400
	passwordMin   = 8
	passwordMax   = 16
)

const passwordSpecialSet = "!@#$%^&*"

// ValidatePassword enforces the account password policy: 8-16
// characters, at least one uppercase letter and one character from the
// special set. Each violation is reported as its own error so callers
// can surface the specific broken rule.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < passwordMin || length > passwordMax {
		return domainErrors.ErrPasswordLength
	}

	hasUpper := false
	hasSpecial := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSpecialSet, r) {
			hasSpecial = true
		}
	}
	if !hasUpper {
		return domainErrors.ErrPasswordUppercase
	}
	if !hasSpecial {
		return domainErrors.ErrPasswordSpecial
	}
	return nil
}

// ValidateName checks account display name bounds.
func ValidateName(name string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < nameMinLen || length > nameMaxLen {
		return domainErrors.ErrInvalidName
	}
	return nil
}

// ValidateAddress checks the postal address length cap.
func ValidateAddress(address string) error {
	if utf8.RuneCountInString(address) > addressMaxLen {
		return domainErrors.ErrInvalidAddress
	}
	return nil
}

// roundAverage reduces a raw mean to two-decimal precision, keeping the
// nil "no ratings yet" marker intact.
func roundAverage(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	rounded := math.Round(*avg*100) / 100
	return &rounded
}

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
			host, port, err := net.SplitHostPort(fl.Field().String())
			if err != nil || strings.ContainsAny(host, " /") {
				return false
			}
			n, err := strconv.Atoi(port)
			return err == nil && n >= 0 && n <= 65535
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError names the first offending field in dotted lower-case form.
type ValidationError struct {
	Field string
	Tag   string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s failed validation for tag '%s'", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: fieldName(fe), Tag: fe.Tag(), Err: err}
	}
	return fmt.Errorf("invalid config: %w", err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned for configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	statePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// validatorInstance returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their yaml names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		// An origin is scheme and host only.
		_ = v.RegisterValidation("origin", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			if err != nil || u.Host == "" {
				return false
			}
			scheme := strings.ToLower(u.Scheme)
			return (scheme == "http" || scheme == "https") && strings.Trim(u.Path, "/") == "" && u.RawQuery == ""
		})

		_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
			return statePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, fieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}

// fieldName turns "Config.tokens[0].path" into "tokens[0].path".
func fieldName(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}

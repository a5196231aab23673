// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
	validateErr  error
)

func initValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their flag names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("flag"); name != "" {
			return name
		}
		return fld.Name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	validateErr = en_translations.RegisterDefaultTranslations(validate, trans)
}

// Validate checks c against its struct tags. All violations are reported in
// one error wrapping ErrInvalidConfig, each translated to English.
func Validate(c *Config) error {
	validateOnce.Do(initValidator)
	if validateErr != nil {
		return fmt.Errorf("config: translations: %w", validateErr)
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

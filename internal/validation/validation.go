// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package validation wraps the struct validator with English translations,
// so that validation errors can be shown to humans and agents alike.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	// Translations is the English translator for validation errors.
	Translations ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire names, not Go names.
	validate.RegisterTagNameFunc(fieldName)

	english := en.New()
	uni := ut.New(english, english)
	Translations, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, Translations); err != nil {
		panic(err)
	}
}

// fieldName returns the json (or toml) name of the field, falling back to
// the Go name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "toml"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Struct validates the struct s.
func Struct(s any) error {
	return validate.Struct(s)
}

// Messages returns the human readable messages for each failed field.  If
// err is not a validation error, the error text is returned as the only
// message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(vErr))
	for _, fe := range vErr {
		msgs = append(msgs, fe.Translate(Translations))
	}
	return msgs
}

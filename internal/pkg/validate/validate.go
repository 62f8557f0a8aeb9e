// Package validate plugs French messages and the custom rules into gin's validator.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	frlocale "github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	frtrans "github.com/go-playground/validator/v10/translations/fr"
)

var (
	once  sync.Once
	trans ut.Translator
)

// Init registers everything on binding.Validator. Safe to call more than once.
func Init() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("strongpwd", strongPassword)

		fr := frlocale.New()
		trans, _ = ut.New(fr, fr).GetTranslator("fr")
		_ = frtrans.RegisterDefaultTranslations(v, trans)

		override(v, "strongpwd", "{0} doit contenir au moins 8 caractères dont une minuscule, une majuscule, un chiffre et un symbole")
		override(v, "datetime", "{0} doit être une date au format AAAA-MM-JJ")
		override(v, "uuid", "{0} doit être un identifiant valide")
		override(v, "eqfield", "La confirmation de {0} ne correspond pas")
	})
}

func override(v *validator.Validate, tag, text string) {
	_ = v.RegisterTranslation(tag, trans, func(u ut.Translator) error {
		return u.Add(tag, text, true)
	}, func(u ut.Translator, fe validator.FieldError) string {
		msg, err := u.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return msg
	})
}

// fieldName reports errors under the name clients send, json first then form.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len([]rune(s)) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Translate turns validator errors into a headline message and a field -> message map.
// ok is false when err is not a validation error.
func Translate(err error) (msg string, fields map[string]string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", nil, false
	}
	fields = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		text := fe.Error()
		if trans != nil {
			text = fe.Translate(trans)
		}
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = text
		}
		if msg == "" {
			msg = text
		}
	}
	return msg, fields, true
}

package feed

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

// recordValidator returns the shared validator, built on first use.
func recordValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()

		_en := en.New()
		uni := ut.New(_en, _en)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)

		_ = validate.RegisterValidation("starttime", func(fl validator.FieldLevel) bool {
			_, err := ParseStartTime(fl.Field().String(), time.UTC)
			return err == nil
		})
		_ = validate.RegisterTranslation("starttime", translator,
			func(ut ut.Translator) error {
				return ut.Add("starttime", "{0} must be a date-time such as 2024-06-15T09:00:00, with an optional UTC offset", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("starttime", fe.Field())
				return t
			},
		)

		// Report JSON field names instead of Go struct names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate, translator
}

// validateRecord checks one wire record and returns a readable reason, or
// "" when the record is well formed.
func validateRecord(rec any) string {
	v, trans := recordValidator()
	err := v.Struct(rec)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, fieldPath(fe)+": "+fe.Translate(trans))
	}
	return strings.Join(reasons, "; ")
}

// fieldPath strips the root struct name from a namespace such as
// "SlotAssignmentWire.slots[0].slotId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

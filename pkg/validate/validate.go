package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cardIDRe = regexp.MustCompile(`^ID\d{6}$`)
	ssnRe    = regexp.MustCompile(`^(\d{3}-\d{2}-\d{4}|\d{9})$`)
)

// CardID reports whether s looks like a library card id, e.g. ID000042.
func CardID(s string) bool { return cardIDRe.MatchString(s) }

func SSN(s string) bool { return ssnRe.MatchString(s) }

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("cardid", func(fl validator.FieldLevel) bool {
		return CardID(fl.Field().String())
	})
	_ = v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return SSN(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	gpvalidator "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	v     *gpvalidator.Validate
	trans ut.Translator
	mut   sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}

	validate := gpvalidator.New()
	// report json names so messages match the request payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	trans, _ = ut.New(enLocale, enLocale).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, trans)

	v = validate
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Message renders a validation error as a single human readable line.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if v == nil {
		Init()
	}

	var ve gpvalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, fe.Translate(trans))
	}
	return strings.Join(messages, ", ")
}

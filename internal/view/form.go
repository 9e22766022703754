package view

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pfrederiksen/calendario/internal/dates"
)

// ErrInvalidForm wraps validation failures returned by AddEventForm.Validate.
var ErrInvalidForm = errors.New("invalid event form")

// AddEventForm is the input of the add-event form.
type AddEventForm struct {
	Time        string `form:"time" json:"time" validate:"required,hourslot"`
	Description string `form:"description" json:"description" validate:"required,notblank"`
}

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error { return ErrInvalidForm }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report form names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("hourslot", func(fl validator.FieldLevel) bool {
		return dates.IsHourSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks the form. It returns FieldErrors, which unwraps to
// ErrInvalidForm, or nil.
func (f AddEventForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "obbligatorio"
	case "hourslot":
		return "ora non valida"
	default:
		return fe.Error()
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// forms.go is the intake path for public form submissions: gorilla/schema
// decodes POST bodies into form structs, validator/v10 checks them, and
// failures come back as a field → message map for template re-render.
// Nothing is persisted and nothing is notified on a validation failure.
package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	// Browsers send csrf_token and whatever else scripts add; only the
	// declared fields matter.
	d.IgnoreUnknownKeys(true)
	return d
}()

var formValidate = func() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("schema"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

// ContactForm is the public contact form.
type ContactForm struct {
	Name    string `schema:"name" validate:"required,max=200"`
	Email   string `schema:"email" validate:"required,email,max=254"`
	Subject string `schema:"subject" validate:"required,max=300"`
	Message string `schema:"message" validate:"required,max=5000"`
}

// ServiceOrderForm is the public service request form.
type ServiceOrderForm struct {
	ServiceID     string `schema:"service_id" validate:"required,uuid"`
	FullName      string `schema:"full_name" validate:"required,max=200"`
	Email         string `schema:"email" validate:"required,email,max=254"`
	Phone         string `schema:"phone" validate:"required,max=50"`
	Organization  string `schema:"organization" validate:"max=300"`
	PreferredDate string `schema:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	Message       string `schema:"message" validate:"required,max=5000"`
}

// BookOrderForm is the order form embedded on a book's detail page.
type BookOrderForm struct {
	FullName string `schema:"full_name" validate:"required,max=200"`
	Email    string `schema:"email" validate:"required,email,max=254"`
	Phone    string `schema:"phone" validate:"required,max=50"`
	Address  string `schema:"address" validate:"required,max=500"`
	Quantity int    `schema:"quantity" validate:"required,min=1,max=100"`
	Message  string `schema:"message" validate:"max=5000"`
}

// decodeForm parses the request body and maps it onto dst.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// validateForm runs struct validation and returns per-field Russian error
// messages, or nil when the form is valid.
func validateForm(form any) map[string]string {
	err := formValidate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Некорректные данные формы."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "email":
		return "Некорректный адрес электронной почты."
	case "max":
		return "Слишком длинное значение."
	case "min":
		return "Слишком маленькое значение."
	case "datetime":
		return "Некорректная дата."
	case "uuid":
		return "Выберите услугу из списка."
	}
	return "Некорректное значение."
}

// formValues captures submitted values for re-rendering a failed form.
// The CSRF token is regenerated per render and never echoed back.
func formValues(r *http.Request) map[string]string {
	vals := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		if k == "csrf_token" {
			continue
		}
		vals[k] = r.PostForm.Get(k)
	}
	return vals
}

// parseOptionalDate parses a YYYY-MM-DD value, returning nil when blank.
// Call only after validation has accepted the format.
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

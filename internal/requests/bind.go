package requests

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"reflect"
	"strings"
	"sync"

	"catalog-api/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupOnce sync.Once

// Decode fills req from the request body: form bodies by `form` tag, anything
// else as JSON. An empty body, with or without a Content-Length, leaves req
// untouched. Required fields are checked by Validate, not here.
func Decode(c *gin.Context, req any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}

	var err error
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err = c.Request.ParseForm(); err == nil {
			err = binding.MapFormWithTag(req, c.Request.PostForm, "form")
		}
	case binding.MIMEMultipartPOSTForm:
		var form *multipart.Form
		if form, err = c.MultipartForm(); err == nil {
			err = binding.MapFormWithTag(req, form.Value, "form")
		}
	default:
		// A chunked request carries no length, so an empty body shows up as EOF.
		if err = json.NewDecoder(c.Request.Body).Decode(req); errors.Is(err, io.EOF) {
			err = nil
		}
	}

	if err != nil {
		return &apperrors.ValidationError{Message: "invalid request body", Err: err}
	}
	return nil
}

// Validate runs req's `binding` rules. The first failing field is reported
// as "<json name> is a required field".
func Validate(req any) error {
	setupOnce.Do(setupValidator)

	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Required(verrs[0].Field())
	}
	return &apperrors.ValidationError{Message: "invalid request", Err: err}
}

func setupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterCustomTypeFunc(fieldValue, Field{})
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return sf.Name
		}
		return name
	})
}

// fieldValue hands validator nil for a falsy Field so `required` fails on it.
func fieldValue(v reflect.Value) any {
	f, ok := v.Interface().(Field)
	if !ok || !f.Truthy() {
		return nil
	}
	return f.raw
}

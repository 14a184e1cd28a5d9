package helpers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Rakhulsr/go-marketplace/app/errs"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

func JSONSuccess(rnd *render.Render, w http.ResponseWriter, status int, message string, data interface{}) {
	body := map[string]interface{}{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	if err := rnd.JSON(w, status, body); err != nil {
		log.Printf("JSONSuccess: failed to write response: %v", err)
	}
}

func JSONError(rnd *render.Render, w http.ResponseWriter, status int, message string, fieldErrors map[string]string) {
	body := map[string]interface{}{
		"status":  "error",
		"message": message,
	}
	if len(fieldErrors) > 0 {
		body["errors"] = fieldErrors
	}
	if err := rnd.JSON(w, status, body); err != nil {
		log.Printf("JSONError: failed to write response: %v", err)
	}
}

// ErrorStatus maps the error taxonomy to HTTP status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders a service error. Unknown errors are logged and hidden
// behind a generic message.
func WriteError(rnd *render.Render, w http.ResponseWriter, op string, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		JSONError(rnd, w, http.StatusBadRequest, "Validation failed.", FormatValidationErrors(ve))
		return
	}

	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
		JSONError(rnd, w, status, "Something went wrong, please try again later.", nil)
		return
	}
	JSONError(rnd, w, status, err.Error(), nil)
}

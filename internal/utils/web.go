package utils

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

// WriteErrorAndStatusCode maps an error to an HTTP response. Errors carrying
// a status code (possibly wrapped) keep it; everything else is a 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) {
		http.Error(w, statusErr.Message, statusErr.StatusCode)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		slog.Debug("body decode failed", "err", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		slog.Debug("body validation failed", "err", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

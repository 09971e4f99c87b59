package utils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status-carrying error keeps its code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}

		WriteErrorAndStatusCode(rr, err)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "User not found")
	})

	t.Run("wrapped status-carrying error still maps", func(t *testing.T) {
		rr := httptest.NewRecorder()
		inner := &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
		err := fmt.Errorf("failed to fetch activity: %w", inner)

		WriteErrorAndStatusCode(rr, err)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()

		WriteErrorAndStatusCode(rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

type testBody struct {
	Name string `json:"name" validate:"required"`
}

func reader(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestDecodeValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		var body testBody
		require.NoError(t, DecodeValidate(reader(`{"name": "x"}`), &body))
		assert.Equal(t, "x", body.Name)
	})

	t.Run("invalid json", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{broken`), &body)
		require.Error(t, err)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	})

	t.Run("missing required field", func(t *testing.T) {
		var body testBody
		err := DecodeValidate(reader(`{}`), &body)
		require.Error(t, err)
	})
}

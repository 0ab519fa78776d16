package errorhandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	tc := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "public error",
			err:     errs.NewPublicError("invalid address"),
			status:  http.StatusBadRequest,
			message: "invalid address",
		},
		{
			name:    "not initialized",
			err:     errors.Wrap(errs.NotInitialized, "no snapshot"),
			status:  http.StatusServiceUnavailable,
			message: "listings not yet initialized",
		},
		{
			name:    "not found",
			err:     errors.Wrap(errs.NotFound, "listing"),
			status:  http.StatusNotFound,
			message: "not found",
		},
		{
			name:    "fiber error",
			err:     fiber.NewError(http.StatusTeapot, "teapot"),
			status:  http.StatusTeapot,
			message: "teapot",
		},
		{
			name:    "unhandled",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: NewHTTPErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got map[string]string
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, got["error"])
		})
	}
}

package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Option enriches the request context, returning an error aborts the request.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// New applies opts in order and stores the resulting context as the fiber user context.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err == nil {
				continue
			}

			var rErr *rejectError
			if errors.As(err, &rErr) {
				return c.Status(rErr.status).JSON(Response{Error: rErr.message})
			}

			logger.ErrorContext(ctx, "Failed to extract request context", err,
				slog.String("event", "requestcontext/error"),
				slog.String("module", "requestcontext"),
				slog.Int("optionIndex", i),
			)
			return c.Status(http.StatusInternalServerError).JSON(Response{Error: "internal server error"})
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

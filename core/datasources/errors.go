package datasources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	coretypes "github.com/gaze-network/marketplace-indexer/core/types"
)

// JSON-RPC error codes used by node providers to reject oversized log queries.
const (
	rpcCodeLimitExceeded = -32005
	rpcCodeInvalidParams = -32602
)

// PartialFetchError is returned when some block ranges could not be fetched.
// Logs holds everything that was fetched successfully, in canonical order.
type PartialFetchError struct {
	Logs         []types.Log
	FailedRanges []coretypes.BlockRange
	Err          error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("partial fetch, failed ranges %v: %v", e.FailedRanges, e.Err)
}

func (e *PartialFetchError) Unwrap() error {
	return e.Err
}

// AsPartialFetchError returns the PartialFetchError in err's chain, if any.
func AsPartialFetchError(err error) (*PartialFetchError, bool) {
	var partial *PartialFetchError
	if errors.As(err, &partial) {
		return partial, true
	}
	return nil, false
}

// classifyRPCError marks a failed eth_getLogs call as errs.RangeTooLarge or errs.Transient.
// Cancellation of ctx is returned as is.
func classifyRPCError(ctx context.Context, err error, r coretypes.BlockRange) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.WithStack(ctxErr)
	}
	wrapped := errors.Wrapf(err, "eth_getLogs %s", r)

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case rpcCodeLimitExceeded:
			return errors.Mark(wrapped, errs.RangeTooLarge)
		case rpcCodeInvalidParams:
			// providers attach the suggested range as error data
			var dataErr rpc.DataError
			if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
				return errors.Mark(wrapped, errs.RangeTooLarge)
			}
		}
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusRequestEntityTooLarge {
		return errors.Mark(wrapped, errs.RangeTooLarge)
	}

	return errors.Mark(wrapped, errs.Transient)
}

package driving

import (
	"context"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

// QueryService runs the full pipeline for one free-text query:
// classify, select context, build prompt, call the model, assemble.
type QueryService interface {
	// Ask answers a query. It always returns a displayable Answer for
	// recoverable outcomes (record not found, unrecognized query,
	// generation failure); the error return is reserved for
	// infrastructure faults such as a failing store.
	Ask(ctx context.Context, query string) (*domain.Answer, error)
}

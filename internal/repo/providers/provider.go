package providers

import (
	"context"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
)

// SearchProvider is the capability every search source implements. Given a
// non-empty term a provider returns zero or more products with fields
// populated best-effort; each provider bounds its own latency.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, term string) ([]models.Product, error)
}

// ProviderError carries which provider and operation failed. A single
// provider's failure never aborts the aggregate search.
type ProviderError struct {
	Provider  string
	Operation string
	Message   string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return e.Provider + " " + e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Provider + " " + e.Operation + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

func NewProviderError(provider, operation, message string, cause error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

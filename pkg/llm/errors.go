package llm

import (
	"fmt"
	"strings"
)

// ProviderError wraps a backend transport/auth/quota failure.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// EmptyResponseError indicates the backend succeeded at the transport
// level but returned no usable content.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("provider %s: empty response from model", e.Provider)
}

// UnknownProviderError indicates a registry lookup miss. It lists the
// currently registered providers so callers can correct their config.
type UnknownProviderError struct {
	Name  string
	Known []string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %s (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

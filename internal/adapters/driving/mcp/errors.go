// Package mcp exposes an open map document to AI assistants over the
// Model Context Protocol. Tools edit the map; resources read it.
package mcp

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")

// toolError prefixes err with its taxonomy name so clients can branch on it.
func toolError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", op, domain.Kind(err), err)
}

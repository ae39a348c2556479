package mcp

import (
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// Document is the open map document.
	Document driving.DocumentService

	// Settings is optional; when set the settings resource is served.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}

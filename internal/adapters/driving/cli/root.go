// Package cli provides the bordermap command-line interface.
//
// Every editing command opens the map named by --file, applies one change
// and saves it back, regenerating the configured exports.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
	"github.com/custodia-labs/bordermap/internal/logger"
)

var (
	// version is set at build time.
	version = "dev"

	mapFile string
	verbose bool

	documentService driving.DocumentService
	settingsService driving.SettingsService
)

// Services holds the driving ports the commands use.
type Services struct {
	Document driving.DocumentService
	Settings driving.SettingsService
}

var rootCmd = &cobra.Command{
	Use:   "bordermap",
	Short: "Trace country borders and export them as maps",
	Long: `bordermap edits map documents made of border points, country borders
and countries, and renders them as HTML/JavaScript, SVG and GeoJSON.

Documents are stored as .xml, .yaml or .db files, chosen by extension.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&mapFile, "file", "f", "", "map document (.xml, .yaml, .yml, .db, .sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services used by every command.
func SetServices(s Services) {
	documentService = s.Document
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and prints any error it returns.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ==================== Document helpers ====================

func requireDocument() error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	return nil
}

// openMap loads the --file document, discarding anything held in memory.
func openMap(cmd *cobra.Command) error {
	if err := requireDocument(); err != nil {
		return err
	}
	if mapFile == "" {
		return fmt.Errorf("no map file given, use --file: %w", domain.ErrInvalidInput)
	}
	documentService.SetIgnoreChanges(true)
	return documentService.Open(cmd.Context(), mapFile)
}

// edit opens the map, applies fn and saves the result in place.
func edit(cmd *cobra.Command, fn func(doc driving.DocumentService) error) error {
	if err := openMap(cmd); err != nil {
		return err
	}
	if err := fn(documentService); err != nil {
		return err
	}
	documentService.SetMayOverwrite(true)
	return documentService.Save(cmd.Context())
}

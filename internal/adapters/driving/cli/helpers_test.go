package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/services"
)

// setupCLI injects an in-memory document with exports disabled and
// restores the previous services when the test ends.
func setupCLI(t *testing.T) (*services.DocumentService, *memory.MapStore) {
	t.Helper()
	settings := domain.DefaultAppSettings()
	settings.Export.Formats = nil

	store := memory.NewMapStore()
	doc := services.NewDocumentService(store, nil, nil, settings)

	oldDoc, oldSettings := documentService, settingsService
	SetServices(Services{
		Document: doc,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	t.Cleanup(func() {
		documentService, settingsService = oldDoc, oldSettings
	})
	return doc, store
}

// run executes the root command with fresh flag values.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	mapFile = ""
	verbose = false
	require.NoError(t, newCmd.Flags().Set("force", "false"))
	require.NoError(t, saveAsCmd.Flags().Set("force", "false"))
	require.NoError(t, pointAddCmd.Flags().Set("endpoint", "false"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// mustRun executes commands that are expected to succeed.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

// drawTriangle creates world.xml holding three endpoints joined by three
// borders.
func drawTriangle(t *testing.T) {
	t.Helper()
	mustRun(t, "-f", "world.xml", "new")
	mustRun(t, "-f", "world.xml", "point", "add", "0", "0", "--endpoint")
	mustRun(t, "-f", "world.xml", "point", "add", "100", "0", "--endpoint")
	mustRun(t, "-f", "world.xml", "point", "add", "50", "80", "--endpoint")
	mustRun(t, "-f", "world.xml", "border", "add", "1-2")
	mustRun(t, "-f", "world.xml", "border", "add", "2-3")
	mustRun(t, "-f", "world.xml", "border", "add", "1-3")
}

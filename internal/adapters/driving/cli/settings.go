package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the crossing guard, country loop policy and export
settings. Environment variables prefixed BORDERMAP_ override stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Keys:
  guard.radius           minimum distance between a new segment and other points
  countries.loop_policy  first, strict or all
  export.formats         comma-separated list of js, svg, geojson (empty disables)
  export.seed            fixed colour seed, 0 for random colours`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	w := cmd.OutOrStdout()
	printTitle(w, "Current Settings")

	formats := make([]string, len(settings.Export.Formats))
	for i, f := range settings.Export.Formats {
		formats[i] = f.String()
	}

	printField(w, "Guard radius", settings.Guard.Radius)
	printField(w, "Loop policy", settings.Countries.LoopPolicy.Description())
	printField(w, "Export formats", orNone(strings.Join(formats, ", ")))
	if settings.Export.Seed != 0 {
		printField(w, "Export seed", settings.Export.Seed)
	} else {
		printField(w, "Export seed", mutedStyle.Render("(random)"))
	}
	fmt.Fprintln(w)

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("Warning: %v", err)))
		fmt.Fprintln(w, "Run 'bordermap settings set' to fix configuration issues.")
	} else {
		fmt.Fprintln(w, "Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("%w (keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
	}

	printSuccess(cmd.OutOrStdout(), "Set %s = %s", args[0], args[1])
	return nil
}

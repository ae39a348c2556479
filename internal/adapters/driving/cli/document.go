package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create an empty map document",
	Long: `Create an empty map at --file.

An existing file is only replaced with --force, or after confirmation
when running in a terminal.`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a summary of the map",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

var saveAsCmd = &cobra.Command{
	Use:   "save-as [path]",
	Short: "Save the map under a new name",
	Long: `Save the map under a new name. The extension picks the storage format,
so save-as also converts between .xml, .yaml and .db documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runSaveAs,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Regenerate the map exports",
	Long:  `Write the configured export formats next to the map without saving it.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	newCmd.Flags().Bool("force", false, "replace an existing file")
	saveAsCmd.Flags().Bool("force", false, "replace an existing file")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(saveAsCmd)
	rootCmd.AddCommand(exportCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	if err := requireDocument(); err != nil {
		return err
	}
	if mapFile == "" {
		return fmt.Errorf("no map file given, use --file: %w", domain.ErrInvalidInput)
	}

	documentService.SetIgnoreChanges(true)
	if err := documentService.New(); err != nil {
		return err
	}
	documentService.SetFileName(mapFile)

	if err := allowOverwrite(cmd); err != nil {
		return err
	}
	if err := documentService.Save(cmd.Context()); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Created %s", mapFile)
	return nil
}

func runInfo(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	sum := documentService.Summary()

	printTitle(w, documentService.FileName())
	printField(w, "Document", sum.DocumentID)
	printField(w, "Reference image", orNone(sum.ReferenceImage))
	printField(w, "Points", fmt.Sprintf("%d (%d endpoints)", sum.Points, sum.Endpoints))
	printField(w, "Borders", fmt.Sprintf("%d (%d parts)", sum.Borders, sum.Parts))
	printField(w, "Countries", sum.Countries)
	return nil
}

func runSaveAs(cmd *cobra.Command, args []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	documentService.SetFileName(args[0])
	if err := allowOverwrite(cmd); err != nil {
		return err
	}
	if err := documentService.Save(cmd.Context()); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Saved %s as %s", mapFile, args[0])
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	files, err := documentService.Export(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(w, warningStyle.Render("No export formats configured."))
		return nil
	}
	for _, f := range files {
		printSuccess(w, "Wrote %s", f)
	}
	return nil
}

// allowOverwrite sets the overwrite flag for the current file name from
// --force, asking on a terminal when the file already exists.
func allowOverwrite(cmd *cobra.Command) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("getting force flag: %w", err)
	}
	if !force && documentService.FileExists(cmd.Context()) && term.IsTerminal(int(os.Stdin.Fd())) {
		cmd.Printf("%s exists. Overwrite? [y/N]: ", documentService.FileName())
		force = confirm(bufio.NewReader(cmd.InOrStdin()))
	}
	documentService.SetMayOverwrite(force)
	return nil
}

func confirm(r *bufio.Reader) bool {
	line, _ := r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

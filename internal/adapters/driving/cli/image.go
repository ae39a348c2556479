package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage the reference image traced by the map",
}

var imageSetCmd = &cobra.Command{
	Use:   "set [path]",
	Short: "Attach a reference image",
	Long:  `Attach a JPEG, PNG, GIF, BMP, TIFF or WebP image to trace borders over.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImageSet,
}

var imageShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the reference image path",
	Args:  cobra.NoArgs,
	RunE:  runImageShow,
}

func init() {
	imageCmd.AddCommand(imageSetCmd)
	imageCmd.AddCommand(imageShowCmd)
	rootCmd.AddCommand(imageCmd)
}

func runImageSet(cmd *cobra.Command, args []string) error {
	err := edit(cmd, func(doc driving.DocumentService) error {
		return doc.SetReferenceImage(args[0])
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Reference image set to %s", args[0])
	return nil
}

func runImageShow(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}
	printField(cmd.OutOrStdout(), "Reference image", orNone(documentService.ReferenceImage()))
	return nil
}

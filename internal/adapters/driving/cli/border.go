package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

var borderCmd = &cobra.Command{
	Use:   "border",
	Short: "Manage country borders",
	Long: `Country borders join two endpoint points. They start as one straight
part and are refined by inserting border points into their segments.
Borders are written a-b with a < b.`,
}

var borderAddCmd = &cobra.Command{
	Use:   "add [a-b]",
	Short: "Add a straight border between two endpoints",
	Args:  cobra.ExactArgs(1),
	RunE:  runBorderAdd,
}

var borderInsertCmd = &cobra.Command{
	Use:   "insert [segment] [point]",
	Short: "Split a border segment at a border point",
	Long: `Split the border part spanning segment (written a-b) at an existing
non-endpoint border point.`,
	Args: cobra.ExactArgs(2),
	RunE: runBorderInsert,
}

var borderRemoveCmd = &cobra.Command{
	Use:   "remove [a-b]",
	Short: "Remove a border no country uses",
	Args:  cobra.ExactArgs(1),
	RunE:  runBorderRemove,
}

var borderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List country borders and their parts",
	Args:  cobra.NoArgs,
	RunE:  runBorderList,
}

func init() {
	borderCmd.AddCommand(borderAddCmd)
	borderCmd.AddCommand(borderInsertCmd)
	borderCmd.AddCommand(borderRemoveCmd)
	borderCmd.AddCommand(borderListCmd)
	rootCmd.AddCommand(borderCmd)
}

func runBorderAdd(cmd *cobra.Command, args []string) error {
	key, err := domain.ParseEdgeKey(args[0])
	if err != nil {
		return err
	}
	err = edit(cmd, func(doc driving.DocumentService) error {
		return doc.AddCountryBorder(key)
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Added border %s", key)
	return nil
}

func runBorderInsert(cmd *cobra.Command, args []string) error {
	segment, err := domain.ParseEdgeKey(args[0])
	if err != nil {
		return err
	}
	n, err := parsePointNumber(args[1])
	if err != nil {
		return err
	}
	err = edit(cmd, func(doc driving.DocumentService) error {
		return doc.InsertBorderPoint(segment, n)
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Inserted point %d into %s", n, segment)
	return nil
}

func runBorderRemove(cmd *cobra.Command, args []string) error {
	key, err := domain.ParseEdgeKey(args[0])
	if err != nil {
		return err
	}
	err = edit(cmd, func(doc driving.DocumentService) error {
		return doc.RemoveCountryBorder(key)
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Removed border %s", key)
	return nil
}

func runBorderList(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	borders := documentService.CountryBorders()
	if len(borders) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No country borders."))
		return nil
	}
	for _, b := range borders {
		parts := make([]string, len(b.Parts))
		for i, p := range b.Parts {
			parts[i] = p.PointNumbers.String()
		}
		fmt.Fprintf(w, "%s  %s\n", labelStyle.Render(b.Endpoints.String()), strings.Join(parts, " "))
	}
	return nil
}

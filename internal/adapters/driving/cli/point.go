package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Manage border points",
}

var pointAddCmd = &cobra.Command{
	Use:   "add [x] [y]",
	Short: "Add a border point",
	Long: `Add a border point at canvas coordinates x,y and print its number.
Use --endpoint for points that country borders may end at. Put negative
coordinates after "--", e.g. point add -- 50 -10.`,
	Args: cobra.ExactArgs(2),
	RunE: runPointAdd,
}

var pointRemoveCmd = &cobra.Command{
	Use:   "remove [number]",
	Short: "Remove a border point no border ends at",
	Args:  cobra.ExactArgs(1),
	RunE:  runPointRemove,
}

var pointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List border points",
	Args:  cobra.NoArgs,
	RunE:  runPointList,
}

func init() {
	pointAddCmd.Flags().BoolP("endpoint", "e", false, "allow borders to end at this point")

	pointCmd.AddCommand(pointAddCmd)
	pointCmd.AddCommand(pointRemoveCmd)
	pointCmd.AddCommand(pointListCmd)
	rootCmd.AddCommand(pointCmd)
}

func runPointAdd(cmd *cobra.Command, args []string) error {
	x, err := parseCoord(args[0])
	if err != nil {
		return err
	}
	y, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	endpoint, err := cmd.Flags().GetBool("endpoint")
	if err != nil {
		return fmt.Errorf("getting endpoint flag: %w", err)
	}

	var n uint32
	err = edit(cmd, func(doc driving.DocumentService) error {
		n, err = doc.AddBorderPoint(x, y, endpoint)
		return err
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Added point %d", n)
	return nil
}

func runPointRemove(cmd *cobra.Command, args []string) error {
	n, err := parsePointNumber(args[0])
	if err != nil {
		return err
	}
	err = edit(cmd, func(doc driving.DocumentService) error {
		return doc.RemoveBorderPoint(n)
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Removed point %d", n)
	return nil
}

func runPointList(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	points := documentService.BorderPoints()
	if len(points) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No border points."))
		return nil
	}
	for _, p := range points {
		kind := ""
		if p.IsEndpoint {
			kind = labelStyle.Render(" endpoint")
		}
		fmt.Fprintf(w, "%4d  (%g, %g)%s\n", p.Number, p.X, p.Y, kind)
	}
	return nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate %q: %w", s, domain.ErrInvalidInput)
	}
	return v, nil
}

func parsePointNumber(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("point number %q: %w", s, domain.ErrInvalidInput)
	}
	return uint32(v), nil
}

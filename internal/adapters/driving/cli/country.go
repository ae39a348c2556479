package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driving"
)

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Manage countries",
}

var countryAddCmd = &cobra.Command{
	Use:   "add [name] [a-b]...",
	Short: "Add a country enclosed by borders",
	Long: `Add a named country. The borders, each written a-b, must form a
closed loop.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCountryAdd,
}

var countryRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a country, keeping its borders",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountryRemove,
}

var countryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries",
	Args:  cobra.NoArgs,
	RunE:  runCountryList,
}

var countryPolygonCmd = &cobra.Command{
	Use:   "polygon [name]",
	Short: "Print a country outline as ordered vertices",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountryPolygon,
}

func init() {
	countryCmd.AddCommand(countryAddCmd)
	countryCmd.AddCommand(countryRemoveCmd)
	countryCmd.AddCommand(countryListCmd)
	countryCmd.AddCommand(countryPolygonCmd)
	rootCmd.AddCommand(countryCmd)
}

func runCountryAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	keys := make([]domain.EdgeKey, 0, len(args)-1)
	for _, a := range args[1:] {
		k, err := domain.ParseEdgeKey(a)
		if err != nil {
			return err
		}
		keys = append(keys, k)
	}

	err := edit(cmd, func(doc driving.DocumentService) error {
		return doc.AddCountry(name, keys)
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Added country %s", name)
	return nil
}

func runCountryRemove(cmd *cobra.Command, args []string) error {
	err := edit(cmd, func(doc driving.DocumentService) error {
		return doc.RemoveCountry(args[0])
	})
	if err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout(), "Removed country %s", args[0])
	return nil
}

func runCountryList(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	countries := documentService.Countries()
	if len(countries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No countries."))
		return nil
	}
	for _, c := range countries {
		borders := make([]string, len(c.Borders))
		for i, k := range c.Borders {
			borders[i] = k.String()
		}
		fmt.Fprintf(w, "%s  %s\n", labelStyle.Render(c.Name), strings.Join(borders, " "))
	}
	return nil
}

func runCountryPolygon(cmd *cobra.Command, args []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	poly, err := documentService.Polygon(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printTitle(w, poly.Name)
	for i, ring := range poly.Rings {
		if len(poly.Rings) > 1 {
			fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("loop %d", i+1)))
		}
		for _, v := range ring {
			fmt.Fprintf(w, "%4d  (%g, %g)\n", v.Number, v.X, v.Y)
		}
	}
	return nil
}

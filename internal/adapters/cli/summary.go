package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/summary"
	"github.com/stationforge/station-planner/internal/infrastructure/config"
)

// attributeLabels maps attribute keys to display labels.
var attributeLabels = map[summary.Attribute]string{
	summary.AttrTurretNum:        "Turrets",
	summary.AttrSLaunchTubes:     "S Launch Tubes",
	summary.AttrMLaunchTubes:     "M Launch Tubes",
	summary.AttrShipStorage:      "Ship Storage",
	summary.AttrSDock:            "S Docks",
	summary.AttrMDock:            "M Docks",
	summary.AttrLXLDock:          "L/XL Docks",
	summary.AttrLFabricationBay:  "L Fabrication Bays",
	summary.AttrXLFabricationBay: "XL Fabrication Bays",
	summary.AttrLMaintenanceBay:  "L Maintenance Bays",
	summary.AttrXLMaintenanceBay: "XL Maintenance Bays",
}

// NewSummaryCommand creates the summary command
func NewSummaryCommand() *cobra.Command {
	var perGroup bool

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Summarize a station build plan",
		Long: `Load a station file and print its aggregated totals: net products,
intermediates, required resources, food draw, workforce balance and
defence/dock capabilities.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCLIConfig()

			cat, st, err := openDocument(cfg, args[0])
			if err != nil {
				return err
			}
			touchRecent(st.Path(), st.Name())

			if perGroup {
				for _, g := range st.Groups() {
					fmt.Printf("=== %s ===\n", g.Name())
					printSummary(cfg, cat, summary.SummarizeGroup(g))
					fmt.Println()
				}
			}

			fmt.Printf("=== %s (station) ===\n", st.Name())
			printSummary(cfg, cat, summary.SummarizeStation(st))
			return nil
		},
	}

	cmd.Flags().BoolVar(&perGroup, "per-group", false,
		"Also print a summary for each group in isolation")

	return cmd
}

func printSummary(cfg *config.Config, cat *catalog.Catalog, s summary.Summary) {
	printEntries(cfg, cat, "Products", s.Products)
	printEntries(cfg, cat, "Intermediates", s.Intermediates)
	printEntries(cfg, cat, "Resources", s.Resources)
	printEntries(cfg, cat, "Food", s.Foods)

	fmt.Printf("Workforce: %+d\n", s.Workforce)

	for _, a := range summary.Attributes {
		total := s.Attributes[a]
		if total.Hidden && !verbose {
			continue
		}
		fmt.Printf("%s: %d\n", attributeLabels[a], total.Value)
	}
}

func printEntries(cfg *config.Config, cat *catalog.Catalog, heading string, entries []summary.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for _, e := range entries {
		name := productName(cfg, cat, e.ProductID)
		if e.MaxAmount != e.Amount {
			fmt.Printf("  %-30s %8d/h (max %d/h)\n", name, e.Amount, e.MaxAmount)
		} else {
			fmt.Printf("  %-30s %8d/h\n", name, e.Amount)
		}
	}
}

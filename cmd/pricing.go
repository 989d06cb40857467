package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roofquote/internal/pricing"
)

var pricingOutput string

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect the price tables",
}

var pricingStatesCmd = &cobra.Command{
	Use:   "states [code]",
	Short: "List per-state prices per square foot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		states := pricing.States()
		if len(args) == 1 {
			rate, ok := pricing.StatePricing(args[0])
			if !ok {
				return eris.Errorf("pricing: unknown state %q", args[0])
			}
			states = []pricing.RegionRate{rate}
		}
		return writeStates(cmd.OutOrStdout(), states, pricingOutput)
	},
}

var pricingMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List state-table materials and the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeMaterials(cmd.OutOrStdout(), pricingOutput)
	},
}

func writeStates(out io.Writer, states []pricing.RegionRate, format string) error {
	switch format {
	case outputJSON:
		return writeJSON(out, states)
	case outputYAML:
		return writeYAML(out, states)
	case outputTable:
	default:
		return eris.Errorf("pricing: unsupported output %q", format)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := []string{"CODE", "NAME", "MULT"}
	for _, m := range pricing.USMaterials {
		header = append(header, strings.ToUpper(string(m)))
	}
	_, _ = fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, s := range states {
		row := []string{s.Code, s.Name, fmt.Sprintf("%.2f", s.Multiplier)}
		for _, m := range pricing.USMaterials {
			r, ok := s.Prices[m]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f-%.2f", r.Min, r.Max))
		}
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

type materialsDump struct {
	US      map[string]pricing.PriceRange `json:"nationalAverage" yaml:"national_average"`
	Catalog []pricing.CatalogEntry        `json:"catalog" yaml:"catalog"`
}

func writeMaterials(out io.Writer, format string) error {
	dump := materialsDump{US: make(map[string]pricing.PriceRange), Catalog: pricing.Catalog()}
	for _, m := range pricing.USMaterials {
		dump.US[string(m)], _ = pricing.NationalAverage(m)
	}

	switch format {
	case outputJSON:
		return writeJSON(out, dump)
	case outputYAML:
		return writeYAML(out, dump)
	case outputTable:
	default:
		return eris.Errorf("pricing: unsupported output %q", format)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "US MATERIAL\tNAME\tNATIONAL AVG ($/SQFT)")
	for _, m := range pricing.USMaterials {
		r := dump.US[string(m)]
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f-%.2f\n", m, m.DisplayName(), r.Min, r.Max)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "CATALOG\tNAME\tNOM\t%s/SQFT\tLIFETIME\tROOF TYPES\n", pricing.CatalogCurrency)
	for _, e := range dump.Catalog {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.2f-%.2f\t%dy\t%s\n",
			e.ID, e.Name, e.NameFr, e.Price.Min, e.Price.Max, e.LifetimeYears, strings.Join(e.RoofTypes, ","))
	}
	return w.Flush()
}

func init() {
	pricingCmd.PersistentFlags().StringVarP(&pricingOutput, "output", "o", outputTable, "output format: table, json, or yaml")
	pricingCmd.AddCommand(pricingStatesCmd, pricingMaterialsCmd)
	rootCmd.AddCommand(pricingCmd)
}

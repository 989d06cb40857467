package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/roofquote/internal/lead"
	"github.com/sells-group/roofquote/internal/quote"
)

var estimateFlags struct {
	area       float64
	material   string
	address    string
	state      string
	roofType   string
	complexity string
	access     string
	conditions []string
	json       bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price a roof replacement",
	Example: `  roofquote estimate --area 2000 --material asphalt --address "44932 Bellflower Ln, Temecula, CA 92592"
  roofquote estimate --area 1800 --material steel --address "Laval, QC" --complexity complex --condition moss`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := quote.Request{
			RoofArea:           quote.Area(estimateFlags.area),
			MaterialPreference: estimateFlags.material,
			RoofType:           estimateFlags.roofType,
			Address:            estimateFlags.address,
			StateCode:          estimateFlags.state,
			PitchComplexity:    estimateFlags.complexity,
			PropertyAccess:     estimateFlags.access,
			RoofConditions:     estimateFlags.conditions,
		}
		resp, err := quote.Estimate(req)
		if err != nil {
			return err
		}
		if estimateFlags.json {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		return writeEstimate(cmd.OutOrStdout(), resp)
	},
}

// writeEstimate prints a human-readable estimate.
func writeEstimate(out io.Writer, r *quote.Response) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if r.UnableToPrice {
		_, _ = fmt.Fprintf(w, "Estimate:\tunable to price %s\n", r.Material.Name)
	} else {
		_, _ = fmt.Fprintf(w, "Estimate:\t%s\n", lead.EstimateBand(r))
		_, _ = fmt.Fprintf(w, "Price per sq ft:\t$%.2f\n", r.PricePerSqFt)
	}
	region := r.StateCode
	if r.Region == quote.RegionCA {
		region = r.Province
	}
	_, _ = fmt.Fprintf(w, "Region:\t%s (%s %s)\n", r.RegionName, r.Region, region)
	_, _ = fmt.Fprintf(w, "Material:\t%s\n", r.Material.Name)
	_, _ = fmt.Fprintf(w, "Complexity score:\t%.3f\n", r.ComplexityScore)
	_, _ = fmt.Fprintf(w, "Conditions:\t%d\n", r.Factors.ConditionCount)
	if r.NationalAverage {
		_, _ = fmt.Fprintln(w, "Note:\tstate not in table, national average used")
	}
	return w.Flush()
}

func init() {
	f := estimateCmd.Flags()
	f.Float64Var(&estimateFlags.area, "area", 0, "roof area in square feet")
	f.StringVar(&estimateFlags.material, "material", "", "material preference")
	f.StringVar(&estimateFlags.address, "address", "", "property address")
	f.StringVar(&estimateFlags.state, "state", "", "state or province code override")
	f.StringVar(&estimateFlags.roofType, "roof-type", "", "flat or sloped")
	f.StringVar(&estimateFlags.complexity, "complexity", "", "simple, moderate, or complex")
	f.StringVar(&estimateFlags.access, "access", "", "easy, moderate, or difficult")
	f.StringSliceVar(&estimateFlags.conditions, "condition", nil, "roof condition flag (repeatable)")
	f.BoolVar(&estimateFlags.json, "json", false, "print the API response as JSON")
	_ = estimateCmd.MarkFlagRequired("area")
	_ = estimateCmd.MarkFlagRequired("material")
	_ = estimateCmd.MarkFlagRequired("address")
	rootCmd.AddCommand(estimateCmd)
}

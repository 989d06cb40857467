package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/server"
)

var parseAddressCmd = &cobra.Command{
	Use:   "parse-address <address>",
	Short: "Extract city, state or province, and postal code from an address",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")
		res := quote.ResolveRegion(raw, "")
		return writeJSON(cmd.OutOrStdout(), server.ParseAddressResponse{
			Address:    raw,
			Parsed:     res.Parsed,
			Region:     res.Region,
			RegionCode: res.Code,
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <address>",
	Short: "Measure a roof from satellite imagery",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		an, err := initAnalyzer(cfg).Analyze(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), an)
	},
}

func init() {
	rootCmd.AddCommand(parseAddressCmd, analyzeCmd)
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roofquote/internal/export"
	"github.com/sells-group/roofquote/internal/lead"
	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/store"
)

var leadsFlags struct {
	limit  int
	source string
	since  time.Duration
	output string
	format string
	out    string
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect, export, and replay captured leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent leads and their delivery status",
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := loadLeads(cmd.Context())
		if err != nil {
			return err
		}
		switch leadsFlags.output {
		case outputJSON:
			return writeJSON(cmd.OutOrStdout(), recs)
		case outputTable:
			formatLeadsList(cmd.OutOrStdout(), recs, time.Now())
			return nil
		default:
			return eris.Errorf("leads: unsupported output %q", leadsFlags.output)
		}
	},
}

var leadsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export leads as CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := loadLeads(cmd.Context())
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if leadsFlags.out != "" {
			f, err := os.Create(leadsFlags.out)
			if err != nil {
				return eris.Wrap(err, "leads: create output file")
			}
			defer f.Close() //nolint:errcheck
			w = f
		} else if leadsFlags.format == export.FormatXLSX {
			return eris.New("leads: --out is required for xlsx")
		}

		if err := export.Write(w, leadsFlags.format, recs); err != nil {
			return err
		}
		if leadsFlags.out != "" {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d leads to %s\n", len(recs), leadsFlags.out)
		}
		return nil
	},
}

var leadsReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-deliver failed lead deliveries that are due",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv(cmd.Context(), "leads")
		if err != nil {
			return err
		}
		defer env.Close()

		res, err := env.Dispatcher.Replay(cmd.Context(), leadsFlags.limit)
		if err != nil {
			return err
		}
		remaining, err := env.Store.CountDLQ(cmd.Context())
		if err != nil {
			return err
		}
		formatReplay(cmd.OutOrStdout(), res, remaining)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the lead log and dead-letter tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "migrated %s store\n", cfg.Store.Driver)
		return nil
	},
}

// openStore validates store config, opens it, and applies migrations.
func openStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("migrate"); err != nil {
		return nil, err
	}
	st, err := initStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

func loadLeads(ctx context.Context) ([]model.LeadRecord, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close() //nolint:errcheck

	filter := model.LeadFilter{Source: leadsFlags.source, Limit: leadsFlags.limit}
	if leadsFlags.since > 0 {
		filter.Since = time.Now().Add(-leadsFlags.since)
	}
	return st.ListLeads(ctx, filter)
}

// formatLeadsList writes a tabular list of leads to out.
func formatLeadsList(out io.Writer, recs []model.LeadRecord, now time.Time) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCONTACT\tESTIMATE\tDELIVERED\tRECEIVED")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t--------\t---------\t--------")

	for _, rec := range recs {
		l := rec.Lead
		contact := l.Email
		if contact == "" {
			contact = l.Phone
		}
		estimate := lead.EstimateBand(l.Quote)
		if estimate == "" {
			estimate = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
			truncateID(l.ID),
			l.Name,
			contact,
			estimate,
			len(rec.Deliveries)-rec.Failed(),
			len(rec.Deliveries),
			humanize.RelTime(l.CreatedAt, now, "ago", "from now"),
		)
	}
	_ = w.Flush()
}

func formatReplay(out io.Writer, res *lead.ReplayResult, remaining int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Due:\t%d\n", res.Due)
	_, _ = fmt.Fprintf(w, "Delivered:\t%d\n", res.Delivered)
	_, _ = fmt.Fprintf(w, "Failed:\t%d\n", res.Failed)
	_, _ = fmt.Fprintf(w, "Skipped:\t%d\n", res.Skipped)
	_, _ = fmt.Fprintf(w, "Remaining in queue:\t%d\n", remaining)
	_ = w.Flush()
}

func init() {
	leadsCmd.PersistentFlags().IntVar(&leadsFlags.limit, "limit", 100, "maximum number of records")
	leadsListCmd.Flags().StringVar(&leadsFlags.source, "source", "", "only leads from this source")
	leadsListCmd.Flags().DurationVar(&leadsFlags.since, "since", 0, "only leads newer than this (e.g. 72h)")
	leadsListCmd.Flags().StringVarP(&leadsFlags.output, "output", "o", outputTable, "output format: table or json")
	leadsExportCmd.Flags().StringVar(&leadsFlags.source, "source", "", "only leads from this source")
	leadsExportCmd.Flags().DurationVar(&leadsFlags.since, "since", 0, "only leads newer than this (e.g. 72h)")
	leadsExportCmd.Flags().StringVar(&leadsFlags.format, "format", export.FormatCSV, "csv or xlsx")
	leadsExportCmd.Flags().StringVar(&leadsFlags.out, "out", "", "output file (default stdout, required for xlsx)")

	leadsCmd.AddCommand(leadsListCmd, leadsExportCmd, leadsReplayCmd)
	rootCmd.AddCommand(leadsCmd, migrateCmd)
}

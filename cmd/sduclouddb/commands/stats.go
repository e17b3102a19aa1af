package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/repository"
)

var jsonOutput bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print row counts per table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _, db, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := repository.New(db).Stats(cmd.Context())
		if err != nil {
			return err
		}
		return writeStats(cmd.OutOrStdout(), stats, jsonOutput)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func writeStats(w io.Writer, stats []domain.TableStats, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tTOTAL\tMARKED FOR DELETE")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s.Table, s.Total, s.MarkedForDelete)
	}
	return tw.Flush()
}

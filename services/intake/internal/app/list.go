package app

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stoik/intake/internal/models"
	"github.com/stoik/intake/services/intake/internal/intake"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List submitted payloads",
	Long:  "Fetches all payloads with their documents and renders them as a table, optionally filtered by completeness and a free-text search term",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		filterStr, _ := cmd.Flags().GetString("filter")
		search, _ := cmd.Flags().GetString("search")
		showStats, _ := cmd.Flags().GetBool("stats")

		filter, err := intake.ParseFilter(filterStr)
		if err != nil {
			return err
		}

		payloads, err := svc.Reload(cmd.Context())
		if err != nil {
			return err
		}

		filtered := intake.FilterPayloads(payloads, filter, search)
		if len(filtered) == 0 {
			if filter != intake.FilterAll || search != "" {
				fmt.Println("No payloads match your filters")
			} else {
				fmt.Println("No payloads submitted yet")
			}
		} else {
			printPayloadTable(filtered)
		}

		if showStats {
			stats := intake.ComputeStats(payloads)
			fmt.Printf("\nTotal: %d  With docs: %d  Need docs: %d  Documents: %d\n",
				stats.Total, stats.WithDocs, stats.WithoutDocs, stats.TotalDocuments)
		}
		return nil
	},
}

func printPayloadTable(payloads []models.Payload) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tFROM\tLEAD\tCOMPANY\tDOCS\tSTATUS\tCREATED")
	for _, p := range payloads {
		status := "pending"
		if p.HasDocuments() {
			status = "complete"
		}
		lead := strings.TrimSpace(p.LeadInfo.FirstName + " " + p.LeadInfo.LastName)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID,
			truncate(p.EmailInfo.Subject, 40),
			p.EmailInfo.From,
			lead,
			p.LeadInfo.Company,
			len(p.Documents),
			status,
			p.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	listCmd.Flags().String("filter", "all", "Completeness filter: all, with-documents or without-documents")
	listCmd.Flags().String("search", "", "Case-insensitive search over subject, from, lead name, company and help comment")
	listCmd.Flags().Bool("stats", false, "Print summary counts after the table")

	rootCmd.AddCommand(listCmd)
}

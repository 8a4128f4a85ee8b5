package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <payload-id>",
	Short: "Show one payload in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid payload id %q", args[0])
		}
		withDocs, _ := cmd.Flags().GetBool("with-documents")

		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		p, err := svc.Payload(cmd.Context(), id, withDocs)
		if err != nil {
			return err
		}

		fmt.Printf("Payload #%d (created %s)\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("  Subject: %s\n", p.EmailInfo.Subject)
		fmt.Printf("  From:    %s\n", p.EmailInfo.From)
		fmt.Printf("  To:      %s\n", strings.Join(p.EmailInfo.To, ", "))
		if len(p.EmailInfo.CC) > 0 {
			fmt.Printf("  CC:      %s\n", strings.Join(p.EmailInfo.CC, ", "))
		}
		lead := strings.TrimSpace(p.LeadInfo.FirstName + " " + p.LeadInfo.LastName)
		if lead != "" || p.LeadInfo.Company != "" {
			fmt.Printf("  Lead:    %s (%s)\n", lead, p.LeadInfo.Company)
		}
		if p.LeadInfo.CanHelpComment != "" {
			fmt.Printf("  Comment: %s\n", p.LeadInfo.CanHelpComment)
		}
		if withDocs {
			if len(p.Documents) == 0 {
				fmt.Println("  Documents: none yet")
			} else {
				fmt.Printf("  Documents (%d):\n", len(p.Documents))
				for _, d := range p.Documents {
					fmt.Printf("    [%d] %s\n", d.ID, d.DocumentLink)
				}
			}
		}
		return nil
	},
}

func init() {
	getCmd.Flags().Bool("with-documents", false, "Embed the payload's document links")

	rootCmd.AddCommand(getCmd)
}

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stoik/intake/internal/models"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a new payload",
	Long:  "Submits a payload either from discrete flags or from a raw JSON blob (--json file, or --json - for stdin). Both paths run the same cleaning and validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		jsonPath, _ := cmd.Flags().GetString("json")

		var id int
		if jsonPath != "" {
			blob, err := readBlob(jsonPath)
			if err != nil {
				return err
			}
			id, err = svc.SubmitRaw(cmd.Context(), blob)
			if err != nil {
				return err
			}
		} else {
			payload, err := payloadFromFlags(cmd)
			if err != nil {
				return err
			}
			id, err = svc.Submit(cmd.Context(), payload)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Payload added successfully! ID: %d\n", id)
		return nil
	},
}

func readBlob(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func payloadFromFlags(cmd *cobra.Command) (models.NewPayload, error) {
	flags := cmd.Flags()

	subject, _ := flags.GetString("subject")
	from, _ := flags.GetString("from")
	to, _ := flags.GetStringArray("to")
	cc, _ := flags.GetStringArray("cc")

	lead := models.LeadInfo{}
	for flag, dst := range map[string]*string{
		"first-name":       &lead.FirstName,
		"last-name":        &lead.LastName,
		"email":            &lead.Email,
		"phone":            &lead.Phone,
		"job-title":        &lead.JobTitle,
		"company":          &lead.Company,
		"country":          &lead.Country,
		"state":            &lead.State,
		"industry":         &lead.Industry,
		"area-of-interest": &lead.AreaOfInterest,
		"contact-reason":   &lead.ContactReason,
		"help-comment":     &lead.CanHelpComment,
	} {
		v, err := flags.GetString(flag)
		if err != nil {
			return models.NewPayload{}, err
		}
		*dst = v
	}

	return models.NewPayload{
		EmailInfo: models.EmailInfo{
			Subject: subject,
			From:    from,
			To:      to,
			CC:      cc,
		},
		LeadInfo: lead,
	}, nil
}

func init() {
	submitCmd.Flags().String("json", "", "Read the payload from a JSON file ('-' for stdin) instead of flags")

	submitCmd.Flags().String("subject", "", "Email subject (required)")
	submitCmd.Flags().String("from", "", "Email from address (required)")
	submitCmd.Flags().StringArray("to", nil, "Email to address (repeatable, at least one required)")
	submitCmd.Flags().StringArray("cc", nil, "Email cc address (repeatable)")

	submitCmd.Flags().String("first-name", "", "Lead first name")
	submitCmd.Flags().String("last-name", "", "Lead last name")
	submitCmd.Flags().String("email", "", "Lead email")
	submitCmd.Flags().String("phone", "", "Lead phone")
	submitCmd.Flags().String("job-title", "", "Lead job title")
	submitCmd.Flags().String("company", "", "Lead company")
	submitCmd.Flags().String("country", "", "Lead country")
	submitCmd.Flags().String("state", "", "Lead state")
	submitCmd.Flags().String("industry", "", "Lead industry")
	submitCmd.Flags().String("area-of-interest", "", "Lead area of interest")
	submitCmd.Flags().String("contact-reason", "", "Lead contact reason")
	submitCmd.Flags().String("help-comment", "", "Lead help comment")

	rootCmd.AddCommand(submitCmd)
}

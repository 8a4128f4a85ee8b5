package app

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Manage document links attached to payloads",
}

var documentsListCmd = &cobra.Command{
	Use:   "list <payload-id>",
	Short: "List the document links attached to a payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid payload id %q", args[0])
		}

		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		docs, err := svc.Documents(cmd.Context(), payloadID)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Printf("No documents attached to payload %d yet\n", payloadID)
			return nil
		}
		for _, d := range docs {
			fmt.Printf("[%d] %s (added %s)\n", d.ID, d.DocumentLink, d.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var documentsAddCmd = &cobra.Command{
	Use:   "add <payload-id> <link>",
	Short: "Attach a document link to a payload",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid payload id %q", args[0])
		}

		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		doc, err := svc.AddDocument(cmd.Context(), payloadID, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Document link added successfully! ID: %d\n", doc.ID)
		return nil
	},
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete <payload-id> <document-id>",
	Short: "Delete a document link from a payload",
	Long:  "Deletes a document link. Asks for confirmation unless --yes is given",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payloadID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid payload id %q", args[0])
		}
		documentID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[1])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(fmt.Sprintf("Delete document %d from payload %d?", documentID, payloadID)) {
			fmt.Println("Aborted")
			return nil
		}

		svc, log, err := newService()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := svc.DeleteDocument(cmd.Context(), payloadID, documentID); err != nil {
			return err
		}
		fmt.Println("Document link deleted successfully!")
		return nil
	},
}

// confirm asks for an explicit second action before a destructive
// operation. Anything but y/yes aborts.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	documentsDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsAddCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

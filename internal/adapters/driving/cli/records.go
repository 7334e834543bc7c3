package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediq-labs/mediq-cli/internal/core/domain"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage stored patient records",
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := recordService.List(context.Background())
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		if len(records) == 0 {
			cmd.Println("No records stored.")
			return nil
		}
		for _, rec := range records {
			cmd.Printf("%s\t%d bytes\tupdated %s\n", rec.Patient, len(rec.Content), rec.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show [patient]",
	Short: "Print one patient's record text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := recordService.Get(context.Background(), args[0])
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("no record for %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		cmd.Println(rec.Content)
		return nil
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete [patient]",
	Short: "Delete one patient's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := recordService.Delete(context.Background(), args[0])
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("no record for %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		cmd.Printf("Deleted record for %s\n", args[0])
		return nil
	},
}

func init() {
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
	rootCmd.AddCommand(recordsCmd)
}

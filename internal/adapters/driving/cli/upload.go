package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file...]",
	Short: "Ingest medical-record documents",
	Long: `Extracts text from the given files (PDF, DOCX or TXT) and stores one
record per patient. The patient identifier is the file base name without
its extension; uploading the same name again replaces the stored content.
A file that cannot be read or parsed is reported and skipped; it never
aborts the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	report, err := ingestService.IngestPaths(context.Background(), args)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	for _, patient := range report.Stored {
		cmd.Printf("Stored record for %s\n", patient)
	}
	for _, w := range report.Warnings {
		cmd.Printf("Warning: %s: %s\n", w.File, w.Reason)
	}
	cmd.Printf("%d stored, %d skipped\n", len(report.Stored), len(report.Warnings))
	return nil
}

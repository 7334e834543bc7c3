package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a question about the stored records",
	Long: `Classifies the query, selects the relevant records and asks the model.
Supported query shapes:
  患者XXX的...          ask about a named patient
  哪些患者有头晕症状     search patients by symptom
  XXX得了什么病          ask for a patient's diagnosis`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if !llmConfigured() {
		return errors.New("no generation endpoint configured: set llm.api_key in config.toml or the OPENAI_API_KEY environment variable")
	}

	answer, err := queryService.Ask(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	if len(answer.References) > 0 {
		cmd.Println()
		cmd.Println("相关病历内容:")
		for _, ref := range answer.References {
			cmd.Println()
			cmd.Printf("--- 患者 %s ---\n", ref.Patient)
			cmd.Println(ref.Content)
		}
	}
	return nil
}

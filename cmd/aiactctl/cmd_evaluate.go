package main

import (
	"encoding/json"
	"fmt"
	"io"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/database"

	"github.com/spf13/cobra"
)

var (
	evalOrg    uint
	evalSystem uint
	evalFormat string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Print the certification readiness report of one AI system",
	Long: `Evaluate loads an AI system with its gap assessment, risk register,
technical documentation and governance roles and prints its readiness.

Examples:
  aiactctl evaluate --org 1 --system 12
  aiactctl evaluate --org 1 --system 12 --format json`,
	PreRunE: loadConfig,
	RunE:    runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().UintVar(&evalOrg, "org", 0, "Organization id")
	evaluateCmd.Flags().UintVar(&evalSystem, "system", 0, "AI system id")
	evaluateCmd.Flags().StringVar(&evalFormat, "format", "text", "Output format: text, json")
	_ = evaluateCmd.MarkFlagRequired("org")
	_ = evaluateCmd.MarkFlagRequired("system")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if evalFormat != "text" && evalFormat != "json" {
		return fmt.Errorf("unsupported format %q", evalFormat)
	}

	db, err := database.Open(cfg.DBDSN, cfg.DBConnectAttempts)
	if err != nil {
		return err
	}
	svc := certification.NewService(database.NewSystemStore(db), nil)

	report, err := svc.Readiness(cmd.Context(), evalOrg, evalSystem)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, evalFormat)
}

func writeReport(w io.Writer, r certification.Report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "System %d: %s\n", r.SystemID, r.Summary)
	fmt.Fprintf(w, "Ready: %t\n", r.Ready)
	if len(r.MissingItems) > 0 {
		fmt.Fprintln(w, "\nMissing:")
		for _, m := range r.MissingItems {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, m := range r.Warnings {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/xlsx"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.xlsx",
		Short: "Print the sheets and row counts of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			summary, err := xlsx.InspectFile(inputPath)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			w := cmd.OutOrStdout()
			if summary.Application != "" {
				fmt.Fprintf(w, "Application: %s\n", summary.Application)
			}
			for _, sheet := range summary.Sheets {
				// Rows includes the header row.
				fmt.Fprintf(w, "%s\t%s\trows=%d\tformulas=%d\n", sheet.Name, sheet.Dimension, max(sheet.Rows-1, 0), sheet.Formulas)
			}
			return nil
		},
	}
}

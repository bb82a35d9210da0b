// Package bill handles batch categorization of itemized bill text.
package bill

import (
	"context"
	"fmt"
	"os"
	"strings"

	"budgetlytic/expense-ai/cmd/root"
	"budgetlytic/expense-ai/internal/models"
	"budgetlytic/expense-ai/internal/textutils"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
)

// Cmd represents the bill command.
var Cmd = &cobra.Command{
	Use:   "bill",
	Short: "Categorize every line of a bill and export the result to CSV",
	Long: `Read an itemized bill as plain text, suggest a category for each item line,
and write the categorized items to a CSV file. Header and footer lines such
as totals, bill numbers, and dates are skipped.`,
	Run: billFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input bill text file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "categorized_expenses.csv", "Output CSV file")
	_ = Cmd.MarkFlagRequired("input")
}

// billRow is one categorized item line in the exported CSV.
type billRow struct {
	Item        string `csv:"Item"`
	Category    string `csv:"Category"`
	Score       int    `csv:"Score"`
	Explanation string `csv:"Explanation"`
	Amount      string `csv:"Amount"`
}

func billFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	engine, _ := root.Engine(ctx)

	data, err := os.ReadFile(inputFile)
	if err != nil {
		root.Log.Errorf("Failed to read bill file: %v", err)
		return
	}

	var rows []billRow
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !isItemLine(line) {
			continue
		}

		suggestions := engine.Suggest(ctx, line, 1)
		if len(suggestions) == 0 {
			continue
		}
		best := suggestions[0]

		amount := ""
		if value, ok := textutils.ExtractAmount(line); ok {
			amount = value.String()
		} else if value, ok := textutils.ExtractBareAmount(line); ok {
			amount = value.String()
		}

		rows = append(rows, billRow{
			Item:        line,
			Category:    best.Category,
			Score:       best.Score,
			Explanation: best.Explanation,
			Amount:      amount,
		})
	}

	if len(rows) == 0 {
		root.Log.Warn("No item lines found in bill")
		return
	}

	out, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionDataFile)
	if err != nil {
		root.Log.Errorf("Failed to create output file: %v", err)
		return
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		root.Log.Errorf("Failed to write CSV: %v", err)
		return
	}

	fmt.Printf("Categorized %d items into %s\n", len(rows), outputFile)
}

// isItemLine reports whether a bill line describes a purchasable item rather
// than a header or footer line.
func isItemLine(line string) bool {
	if line == "" {
		return false
	}
	lowered := strings.ToLower(line)
	if strings.Contains(lowered, "total") || strings.Contains(lowered, "bill no") || strings.Contains(lowered, "date") {
		return false
	}
	for _, r := range line {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

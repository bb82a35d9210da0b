// Package suggest handles the category suggestion command.
package suggest

import (
	"context"
	"fmt"

	"budgetlytic/expense-ai/cmd/root"

	"github.com/spf13/cobra"
)

var (
	text string
	topN int
)

// Cmd represents the suggest command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank spending categories for an expense description",
	Long: `Rank candidate spending categories for a free-text expense description and
explain why each category was chosen.`,
	Run: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&text, "text", "t", "", "Expense description to categorize")
	Cmd.Flags().IntVarP(&topN, "top", "n", 0, "Maximum number of suggestions (default from config)")
	_ = Cmd.MarkFlagRequired("text")
}

func suggestFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	engine, _ := root.Engine(ctx)

	if topN < 1 {
		topN = root.Cfg.Engine.TopN
	}

	for i, s := range engine.Suggest(ctx, text, topN) {
		glyph := s.Glyph
		if glyph != "" {
			glyph += " "
		}
		fmt.Printf("%d. %s%s (score %d)\n   %s\n", i+1, glyph, s.Category, s.Score, s.Explanation)
	}
}

// Package category handles runtime category management commands.
package category

import (
	"errors"
	"strings"

	"budgetlytic/expense-ai/cmd/root"
	"budgetlytic/expense-ai/internal/registry"

	"github.com/spf13/cobra"
)

var (
	name     string
	glyph    string
	keywords string
)

// Cmd represents the add-category command.
var Cmd = &cobra.Command{
	Use:   "add-category",
	Short: "Add a custom category to the registry",
	Long: `Add a custom category with its keywords. The full registry is persisted to
the override file, so every subsequent suggestion reflects the new category.`,
	Run: addCategoryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&name, "name", "c", "", "Category name (must be unique)")
	Cmd.Flags().StringVarP(&glyph, "glyph", "g", "🔖", "Display glyph for the category")
	Cmd.Flags().StringVarP(&keywords, "keywords", "k", "", "Comma-separated keywords")
	_ = Cmd.MarkFlagRequired("name")
}

func addCategoryFunc(cmd *cobra.Command, args []string) {
	reg := root.Registry()

	var kws []string
	for _, kw := range strings.Split(keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			kws = append(kws, kw)
		}
	}

	if err := reg.AddCategory(name, glyph, kws); err != nil {
		if errors.Is(err, registry.ErrDuplicateCategory) {
			root.Log.Errorf("Category %q already exists; pick another name", name)
			return
		}
		root.Log.Errorf("Failed to add category: %v", err)
		return
	}

	root.Log.Infof("Added category %q with %d keywords", name, len(kws))
}

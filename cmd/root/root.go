// Package root contains the root command and the shared wiring that builds
// the suggestion engine from configuration.
package root

import (
	"context"
	"time"

	"budgetlytic/expense-ai/internal/cache"
	"budgetlytic/expense-ai/internal/conceptnet"
	"budgetlytic/expense-ai/internal/config"
	"budgetlytic/expense-ai/internal/logging"
	"budgetlytic/expense-ai/internal/models"
	"budgetlytic/expense-ai/internal/registry"
	"budgetlytic/expense-ai/internal/store"
	"budgetlytic/expense-ai/internal/suggester"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logrus instance for commands.
	Log = logrus.New()

	// Logger is the structured logger handed to engine components.
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(Log)

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "expense-ai",
		Short: "Suggest spending categories for free-text expense descriptions.",
		Long: `expense-ai ranks candidate spending categories for a typed note, an OCR'd
receipt line, or a voice transcript, and explains why each category was chosen.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-ai!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			Log = config.ConfigureLoggingFromConfig(Cfg)
			Logger = logging.NewLogrusAdapterFromLogger(Log)
		},
	}
)

// Engine builds the fully wired suggestion engine: registry from the
// override file (or built-in defaults), file-backed lookup cache, ConceptNet
// client, and the optional Gemini fallback.
func Engine(ctx context.Context) (*suggester.Engine, *registry.Registry) {
	categoryStore := store.NewCategoryStore(Cfg.Data.CategoriesFile)
	reg := registry.Load(models.DefaultCategories(), categoryStore, Logger)

	lookupCache := cache.NewFileCache(Cfg.Data.CacheFile, Logger)
	client := conceptnet.NewClient(Cfg.ConceptNet.BaseURL, time.Duration(Cfg.ConceptNet.TimeoutSeconds)*time.Second)
	expander := suggester.NewExpander(client, lookupCache, Logger)

	engine := suggester.New(reg, expander, Logger, suggester.Options{
		Mode:                 Cfg.Engine.Mode,
		FuzzyThreshold:       Cfg.Engine.FuzzyThreshold,
		LargeAmountThreshold: decimal.NewFromInt(int64(Cfg.Engine.LargeAmountThreshold)),
	})

	if Cfg.AI.Enabled {
		aiClient, err := suggester.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model, Logger)
		if err != nil {
			Log.Warnf("AI fallback unavailable: %v", err)
		} else {
			engine.SetAIClient(aiClient)
		}
	}

	return engine, reg
}

// Registry builds just the category registry, for commands that mutate it
// without scoring anything.
func Registry() *registry.Registry {
	categoryStore := store.NewCategoryStore(Cfg.Data.CategoriesFile)
	return registry.Load(models.DefaultCategories(), categoryStore, Logger)
}

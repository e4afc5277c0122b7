package cmd

import (
	"log"
	"strings"

	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/logger"
	"github.com/teamwerk/tender-scout/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the keyword catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		runCatalog(cmd)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().String("catalog-file", "", "TOML catalog file overriding the built-in keywords")
	catalogCmd.Flags().String("tier", "", "only entries of the given tier (tier1, tier2, tier3, reject)")
	catalogCmd.Flags().String("category", "", "only reject entries of the given category")
}

func runCatalog(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cat, err := catalogFromFlag(cmd)
	if err != nil {
		logger.Fatal("loading keyword catalog", zap.Error(err))
	}

	entries := cat.Entries()

	if tier, _ := cmd.Flags().GetString("tier"); strings.TrimSpace(tier) != "" {
		entries = filterByTier(entries, catalog.Tier(strings.ToLower(strings.TrimSpace(tier))))
	}

	if category, _ := cmd.Flags().GetString("category"); strings.TrimSpace(category) != "" {
		entries = filterByCategory(entries, catalog.Category(strings.ToLower(strings.TrimSpace(category))))
	}

	if err := output.Table(entries); err != nil {
		logger.Fatal("rendering catalog", zap.Error(err))
	}
}

func filterByTier(entries []catalog.Entry, tier catalog.Tier) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Tier == tier {
			out = append(out, e)
		}
	}
	return out
}

func filterByCategory(entries []catalog.Entry, cat catalog.Category) []catalog.Entry {
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

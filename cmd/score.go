package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/classify"
	"github.com/teamwerk/tender-scout/internal/logger"
	"github.com/teamwerk/tender-scout/internal/output"
	"github.com/teamwerk/tender-scout/internal/prefilter"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/scoring"
	"github.com/teamwerk/tender-scout/internal/skills"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one opportunity or a whole projects file without the full pipeline",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("title", "", "opportunity title")
	scoreCmd.Flags().String("description", "", "opportunity description")
	scoreCmd.Flags().String("attachment-file", "", "file with extracted attachment text (tender documents)")
	scoreCmd.Flags().StringSlice("skills", nil, "candidate skills for the overlap axis")
	scoreCmd.Flags().String("catalog-file", "", "TOML catalog file overriding the built-in keywords")
	scoreCmd.Flags().String("input", "", "projects file for batch scoring")
}

func score(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	cat, err := catalogFromFlag(cmd)
	if err != nil {
		logger.Fatal("loading keyword catalog", zap.Error(err))
	}

	if input, _ := cmd.Flags().GetString("input"); strings.TrimSpace(input) != "" {
		if err := scoreBatch(strings.TrimSpace(input), cat, logger); err != nil {
			logger.Fatal("batch scoring failed", zap.Error(err))
		}
		return
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	if strings.TrimSpace(title) == "" && strings.TrimSpace(description) == "" {
		logger.Fatal("nothing to score", zap.String("hint", "pass --title/--description or --input"))
	}

	attachment, err := attachmentText(cmd)
	if err != nil {
		logger.Fatal("reading attachment file", zap.Error(err))
	}

	candidateSkills, _ := cmd.Flags().GetStringSlice("skills")

	b := breakdown(cat, logger, title, description, attachment, candidateSkills)

	if err := output.Table(b); err != nil {
		logger.Fatal("rendering breakdown", zap.Error(err))
	}
}

// breakdown gathers every axis the score command shows: the keyword
// result, the project type, the screen reason when the opportunity would
// be skipped, umbrella-term expansion and the optional skill overlap.
func breakdown(cat *catalog.Catalog, logger *zap.Logger, title, description, attachment string, candidateSkills []string) *output.Breakdown {
	scorer := scoring.New(cat, logger)
	screen := prefilter.New(cat, logger)

	result := scorer.Score(title, description, attachment)

	b := &output.Breakdown{
		Title:    title,
		Type:     classify.Classify(title, description),
		Result:   result,
		Expanded: skills.ExpandTerms(title + " " + description),
	}

	if screen.ShouldSkip(title, description) {
		b.Screen = screen.SkipReason(title, description)
	}

	if len(candidateSkills) > 0 {
		found := result.FoundSkills()
		b.Overlap = &output.OverlapInfo{
			Ratio:    skills.Overlap(found, candidateSkills),
			Matching: skills.Matching(found, candidateSkills),
			Missing:  skills.Missing(found, candidateSkills),
		}
	}

	return b
}

func scoreBatch(input string, cat *catalog.Catalog, logger *zap.Logger) error {
	projects, err := project.Load(input)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}

	logger.Info("scoring projects", zap.Int("count", projects.Len()), zap.String("input", input))

	// Per-item score logs would interleave with the progress bar.
	scorer := scoring.New(cat, zap.NewNop())
	screen := prefilter.New(cat, zap.NewNop())

	summary := &output.Summary{Total: projects.Len()}

	bar := progressbar.Default(int64(projects.Len()), "scoring")
	for _, item := range projects.Items {
		switch {
		case screen.ShouldSkip(item.Title, item.Description):
			summary.Screened++
		default:
			r := scorer.Score(item.Title, item.Description, item.AttachmentText)
			switch r.Event() {
			case scoring.EventReject:
				summary.Rejected++
			case scoring.EventHigh:
				summary.High++
			case scoring.EventMedium:
				summary.Medium++
			default:
				summary.Low++
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Println()
	return output.Table(summary)
}

func attachmentText(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("attachment-file")
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	data, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func catalogFromFlag(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog-file")
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(strings.TrimSpace(path))
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/teamwerk/tender-scout/internal/ai"
	"github.com/teamwerk/tender-scout/internal/ai/gemini"
	"github.com/teamwerk/tender-scout/internal/catalog"
	"github.com/teamwerk/tender-scout/internal/logger"
	"github.com/teamwerk/tender-scout/internal/matching"
	"github.com/teamwerk/tender-scout/internal/output"
	"github.com/teamwerk/tender-scout/internal/prefilter"
	"github.com/teamwerk/tender-scout/internal/project"
	"github.com/teamwerk/tender-scout/internal/scoring"
	"github.com/teamwerk/tender-scout/internal/secrets"
	"github.com/teamwerk/tender-scout/internal/team"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowShortlist       = "Show shortlist"
	PromptReportByPortal      = "Report by portal"
	PromptProjectDetails      = "Show project details"
	PromptProjectsToFile      = "Dump projects to file"
	PromptAppendToExcludeFile = "Append all projects to exclude file"
	PromptQuit                = "Quit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Next action",
	Items: []string{
		PromptShowShortlist,
		PromptReportByPortal,
		PromptProjectDetails,
		PromptProjectsToFile,
		PromptAppendToExcludeFile,
		PromptQuit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full matching pipeline over a projects file",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "print the shortlist and exit without asking for actions")
	runCmd.Flags().Bool("ignore-exclude-file", false, "keep projects even when the exclude file lists them")
	runCmd.Flags().StringP("input", "i", "", "projects file. Overrides the input key from the config.")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with projects to exclude. Default is unset.")

	viper.BindPFlag("input", runCmd.Flags().Lookup("input"))
	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the tender-scout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	input := strings.TrimSpace(config.Input)
	if input == "" {
		input = strings.TrimSpace(viper.GetString("input"))
	}
	if input == "" {
		logger.Fatal("projects file is required under the input key or the --input flag")
	}

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading keyword catalog", zap.Error(err))
	}

	crew, err := loadTeam(config)
	if err != nil {
		logger.Fatal(
			"loading team file",
			zap.Error(err),
			zap.String("hint", "set TENDER_SCOUT_TEAM_FILE environment variable or the 'team-file' key in the configuration file"),
		)
	}
	if crew == nil {
		logger.Info("no team configured, skill overlap stays neutral")
	}

	projects, err := project.Load(input)
	if err != nil {
		logger.Fatal("loading projects", zap.Error(err), zap.String("input", input))
	}

	if assigned := projects.EnsureIDs(); assigned > 0 {
		logger.Debug("assigned missing project ids", zap.Int("count", assigned))
	}

	logger.Info("loaded projects", zap.Int("count", projects.Len()), zap.String("input", input))

	if projects.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no projects found"))
		return
	}

	deps := prepareDeps(ctx, config, cat, crew, logger)

	stages := []matching.Stage{
		matching.NewEarlyScreen(),
		matching.NewPortals(),
		matching.NewExcludeFile(),
		matching.NewTypeScreen(),
		matching.NewRelevance(),
	}

	if cmd.Flag("ignore-exclude-file").Value.String() == "true" {
		matching.DisableByName(stages, "exclude_file", "disabled by flag")
	}

	kept, assessments, err := matching.Run(ctx, matchingConfig(config), deps, stages, projects)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	logger.Debug("pipeline stages", zap.Any("stages", matching.Describe(stages)))

	if kept.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no projects left after matching"))
		return
	}

	logger.Info("shortlist ready", zap.Int("count", kept.Len()), zap.Int("assessed", len(assessments)))

	if err := output.Table(kept); err != nil {
		logger.Fatal("rendering shortlist", zap.Error(err))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, kept); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, projects *project.Projects) error {
	switch action {
	case PromptShowShortlist:
		return output.Table(projects)
	case PromptReportByPortal:
		return output.PortalReport(os.Stdout, projects.ReportByPortal())
	case PromptProjectDetails:
		return projectDetails(projects)
	case PromptProjectsToFile:
		filename, err := projects.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, projects)
	case PromptQuit:
		logger.Info("exiting", zap.String("reason", "quit requested"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func projectDetails(projects *project.Projects) error {
	for {
		items := make([]string, 0, projects.Len()+1)
		for _, item := range projects.Items {
			label := fmt.Sprintf("%s %s", item.ID, item.Title)
			if item.Match != nil {
				label = fmt.Sprintf("%s %s (%d/100)", item.ID, item.Title, item.Match.FinalScore)
			}
			items = append(items, label)
		}

		detailPrompt := promptui.Select{
			Label: "Choose a project and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := detailPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		projectID := strings.Split(selected, " ")[0]
		item := projects.FindByID(projectID)
		if item == nil {
			return fmt.Errorf("there is no such project id %s", projectID)
		}

		if err := output.Table(item); err != nil {
			return err
		}
	}
}

func appendToExcludeFile(logger *zap.Logger, projects *project.Projects) error {
	excludeFile := strings.TrimSpace(viper.GetString("exclude-file"))
	if excludeFile == "" {
		logger.Warn("no exclude file configured",
			zap.String("hint", "set the 'exclude-file' key in the configuration file or the -e flag"),
		)
		return nil
	}

	excluded, err := project.ExcludedFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(projects.ToExcluded("reviewed shortlist"))

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.Int("count", projects.Len()))

	projects.Exclude(project.IDField, excluded.ProjectIDs())

	if projects.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no projects left"))
		return errExit
	}

	return nil
}

func loadCatalog(config *Config) (*catalog.Catalog, error) {
	path := strings.TrimSpace(config.CatalogFile)
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func loadTeam(config *Config) (*team.Team, error) {
	path := strings.TrimSpace(config.TeamFile)
	if path == "" {
		path = strings.TrimSpace(viper.GetString("team-file"))
	}
	if path == "" {
		return nil, nil
	}
	return team.Load(path)
}

func matchingConfig(config *Config) *matching.Config {
	cfg := &matching.Config{}

	if config.Exclude != nil {
		cfg.Portals = config.Exclude.Portals
	}

	if m := config.Matching; m != nil {
		cfg.KeepAvoided = m.KeepAvoided
		cfg.Verdict = &matching.VerdictConfig{
			ApplyAt:           m.ApplyAt,
			ReviewAt:          m.ReviewAt,
			PublicSectorBonus: m.PublicSectorBonus,
		}
	}

	return cfg
}

func prepareDeps(ctx context.Context, config *Config, cat *catalog.Catalog, crew *team.Team, base *zap.Logger) matching.Deps {
	deps := matching.Deps{
		Logger: base,
		Scorer: scoring.New(cat, base),
		Screen: prefilter.New(cat, base),
		Team:   crew,
	}

	classifier, err := newContextClassifier(ctx, config.AI, base)
	if err != nil {
		base.Warn("running without context classification", zap.Error(err))
	}
	deps.Context = ai.NewContextScorer(classifier, base)

	return deps
}

func newContextClassifier(ctx context.Context, cfg *AIConfig, base *zap.Logger) (ai.Classifier, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := resolveGeminiKey(cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(base, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewClassifier(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}

func resolveGeminiKey(cfg *GeminiConfig) (string, error) {
	file := strings.TrimSpace(cfg.APIKeyFile)
	if file == "" {
		file = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  file,
		Env:   "GEMINI_API_KEY",
		Value: cfg.APIKey,
	})
}

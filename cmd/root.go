package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "tender-scout"
)

type Config struct {
	Input       string          `mapstructure:"input"`
	ExcludeFile string          `mapstructure:"exclude-file"`
	TeamFile    string          `mapstructure:"team-file"`
	CatalogFile string          `mapstructure:"catalog-file"`
	Exclude     *ExcludeConfig  `mapstructure:"exclude"`
	Matching    *MatchingConfig `mapstructure:"matching"`
	AI          *AIConfig       `mapstructure:"ai"`
}

type ExcludeConfig struct {
	Portals []string `mapstructure:"portals"`
}

type MatchingConfig struct {
	ApplyAt           int  `mapstructure:"apply-at"`
	ReviewAt          int  `mapstructure:"review-at"`
	PublicSectorBonus int  `mapstructure:"public-sector-bonus"`
	KeepAvoided       bool `mapstructure:"keep-avoided"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "tender-scout is a cli for scoring scraped project opportunities and shortlisting the ones worth an offer",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("team-file", "TENDER_SCOUT_TEAM_FILE"); err != nil {
		log.Fatalf("binding TENDER_SCOUT_TEAM_FILE environment variable: %v", err)
	}

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is tender-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only the run command needs the config file. The other commands
	// work from flags alone.
	if runCmd.CalledAs() == "" {
		return
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("loading .env file: %v", err)
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"career-match/internal/catalog"
	"career-match/internal/domain"
	"career-match/internal/service"
)

const app = "career-match"

// cliConfig son los ajustes del CLI; se leen de flags, de CAREER_MATCH_* y de un
// career-match.yaml opcional.
type cliConfig struct {
	Catalog   string              `mapstructure:"catalog"`
	Threshold float64             `mapstructure:"threshold"`
	Top       int                 `mapstructure:"top"`
	Weights   domain.MatchWeights `mapstructure:"weights"`
}

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "cli_assess",
		Short: "career-match runs the career assessment questionnaire from the terminal",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-match.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json output")
	rootCmd.PersistentFlags().String("catalog", "", "career catalog yaml (default is the embedded catalog)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))

	defaults := domain.DefaultMatchWeights()
	viper.SetDefault("threshold", service.DefaultMatchThreshold)
	viper.SetDefault("top", 10)
	viper.SetDefault("weights.personality", defaults.Personality)
	viper.SetDefault("weights.skills", defaults.Skills)
	viper.SetDefault("weights.interests", defaults.Interests)
	viper.SetDefault("weights.values", defaults.Values)
	viper.SetDefault("weights.workstyle", defaults.WorkStyle)
}

func initConfig() {
	viper.SetEnvPrefix("CAREER_MATCH")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*cliConfig, error) {
	var config cliConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func loadCatalog(config *cliConfig) (*catalog.Catalog, error) {
	return catalog.Open(config.Catalog)
}

package main

import (
	"fmt"
	"os"

	"github.com/Dan9191/serenity-service/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = logrus.New()
	rootCmd = &cobra.Command{
		Use:   "serenity",
		Short: "Budget projection and serenity score",
		Long: `serenity projects a budget's balance day by day, computes its monthly
KPIs and rates it with a 0-100 serenity score.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(scoreCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	v := viper.GetViper()
	config.SetDefaults(v)
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = v.GetString("SERENITY_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	logger = cfg.NewLogger()
	logger.SetOutput(os.Stderr)
	return nil
}

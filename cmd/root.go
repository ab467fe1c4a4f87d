package cmd

import (
	"os"

	"github.com/devon-mar/linkheader/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".linkheader.yml"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkheader",
	Short: "Parse HTTP Link headers.",
}

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides the config file)")
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var err error
	// The default config file is optional, an explicit one is not.
	cfg, err = config.ReadConfig(cfgFile, !rootCmd.PersistentFlags().Changed("config"))
	if err != nil {
		log.WithError(err).WithField("config", cfgFile).Fatal("Error loading config.")
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Fatal("Invalid log level.")
	}
	log.SetLevel(lvl)
	log.WithField("config", cfgFile).Debug("Loaded config.")
}

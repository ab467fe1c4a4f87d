package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config.",
	Run: func(cmd *cobra.Command, args []string) {
		// initConfig already failed on an invalid file.
		if err := cfg.Validate(); err != nil {
			log.WithError(err).Error("Invalid config.")
			exit(1)
		}
		log.WithField("config", cfgFile).Info("Config is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/devon-mar/linkheader/linkhdr"
)

var parseCmd = &cobra.Command{
	Use:   "parse [HEADER]",
	Short: "Parse a Link header.",
	Long: `Parse a Link header and print its links sorted by relation.

The header can also be given through the environment variable ` + envLinkHeader + `
or on stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exit(runParse(cmd, args))
	},
}

var (
	parseByRelation bool
	parseOutput     string
	parseRelations  []string
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseByRelation, "by-relation", false, "key links without a rel by the empty string")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output format: text, json or yaml")
	parseCmd.Flags().StringSliceVar(&parseRelations, "rel", nil, "only print these relations")
}

func runParse(cmd *cobra.Command, args []string) int {
	if cmd.Flags().Changed("by-relation") {
		cfg.ByRelation = parseByRelation
	}
	if parseOutput != "" {
		cfg.Output = parseOutput
	}
	if len(parseRelations) > 0 {
		cfg.Relations = parseRelations
	}

	hdr, err := readHeader(args, os.Stdin)
	if err != nil {
		log.WithError(err).Error("Error reading header.")
		return 1
	}

	records, err := parseRecords(hdr, cfg.ByRelation, cfg.Relations)
	if err != nil {
		log.WithError(err).Error("Error parsing header.")
		return 1
	}
	log.WithField("links", len(records)).Debug("Parsed header.")

	if err := writeRecords(cmd.OutOrStdout(), cfg.Output, records); err != nil {
		log.WithError(err).Error("Error writing output.")
		return 1
	}
	return 0
}

func parseRecords(hdr string, byRelation bool, only []string) ([]linkRecord, error) {
	if byRelation {
		links, err := linkhdr.ParseWithRelation(hdr)
		if err != nil {
			return nil, err
		}
		return recordsFromRelationMap(links, only), nil
	}
	links, err := linkhdr.Parse(hdr)
	if err != nil {
		return nil, err
	}
	return recordsFromLinkMap(links, only), nil
}

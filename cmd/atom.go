package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/devon-mar/linkheader/atomlink"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var atomCmd = &cobra.Command{
	Use:   "atom FILE",
	Short: "Print the links of an Atom feed as a Link header.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeAtomLinks(cmd.OutOrStdout(), args[0]); err != nil {
			log.WithField("file", args[0]).WithError(err).Fatal("Error reading feed links.")
		}
	},
}

func init() {
	rootCmd.AddCommand(atomCmd)
}

func writeAtomLinks(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening feed: %w", err)
	}
	defer f.Close()

	links, err := atomlink.Parse(f)
	if err != nil {
		return err
	}
	log.WithField("file", path).WithField("links", len(links)).Debug("Read feed links.")
	_, err = fmt.Fprintln(w, links)
	return err
}

package cmd

import (
	"fmt"
	"os"

	"github.com/devon-mar/linkheader/pagination"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var nextPageCmd = &cobra.Command{
	Use:   "next-page [HEADER]",
	Short: "Print the page numbers of a Link header.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hdr, err := readHeader(args, os.Stdin)
		if err != nil {
			log.WithError(err).Fatal("Error reading header.")
		}
		pages, err := pagination.FromHeader(hdr, cfg.PageParam)
		if err != nil {
			log.WithError(err).Fatal("Error parsing header.")
		}
		writePages(cmd, pages)
	},
}

func init() {
	rootCmd.AddCommand(nextPageCmd)
}

func writePages(cmd *cobra.Command, p *pagination.Pages) {
	fmt.Fprintf(cmd.OutOrStdout(), "first\t%d\nprev\t%d\nnext\t%d\nlast\t%d\n", p.First, p.Prev, p.Next, p.Last)
}

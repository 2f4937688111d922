package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paddyodab/lookup-import/internal/lookup"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported import formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tSOURCE\tNAMESPACES\tLABEL")
			for _, def := range lookup.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					def.Info.Key,
					def.Info.Source,
					strings.Join(def.Info.Namespaces, ","),
					def.Info.Label,
				)
			}
			return w.Flush()
		},
	}
}

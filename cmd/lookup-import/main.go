// Command lookup-import converts flat reference-data files into canonical
// lookup records and either writes them to a JSON review file or bulk-loads
// them into the survey platform's lookups table.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// pdbreport parses a directory of pipeline output PDBs into a single
// TSV/CSV table: per-chain sequences, PDBinfo-LABEL residue ranges and
// SCORE values, optionally merged with an external score table.
package main

import (
	"flag"
	"log"
	"os"
	"path"

	"github.com/richieYT-wan/RFantibody/cmd/util"
	"github.com/richieYT-wan/RFantibody/report"
)

var (
	flagPdbDir = ""
	flagOut    = ""
	flagScores = ""
)

func usage() {
	log.Printf("Usage: %s -pdb-dir outputs/ -o table.tsv [-scores scores.sc]\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.StringVar(&flagPdbDir, "pdb-dir", flagPdbDir,
		"Directory containing output .pdb files.")
	flag.StringVar(&flagOut, "o", flagOut,
		"Output table path (.csv for comma-separated, anything else is tab-separated).")
	flag.StringVar(&flagScores, "scores", flagScores,
		"Optional .sc score table to merge by identifier.")
	flag.Usage = usage
	flag.Parse()

	if flagPdbDir == "" || flagOut == "" {
		usage()
	}

	entries, err := report.ParseDir(flagPdbDir)
	util.Assert(err)

	if flagScores != "" {
		util.Assert(report.MergeScores(entries, flagScores), "merge %s", flagScores)
	}

	util.Assert(report.WriteTable(flagOut, entries), "write %s", flagOut)
}

// pdbclean cleans a PDB structure file (or every .pdb file under a
// directory) for downstream structure-prediction pipelines: it keeps the
// first model only, filters altlocs, hydrogens, waters and unwanted chains
// or ligands, renumbers residues per chain, annotates ligand occlusion and
// optional accessibility hotspots, and re-emits the records with chain
// breaks and an END marker.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/richieYT-wan/RFantibody/clean"
	"github.com/richieYT-wan/RFantibody/cmd/util"
	"github.com/richieYT-wan/RFantibody/dssp"
	"github.com/richieYT-wan/RFantibody/sasa"
)

var (
	flagInput      = ""
	flagOutput     = ""
	flagChains     = ""
	flagLigands    = ""
	flagCutoff     = 4.0
	flagNoRenumber = false
	flagKeepH      = false
	flagAltLoc     = "A"
	flagSASA       = ""
	flagRSA        = 0.0
	flagDSSP       = ""
	flagSASAOut    = ""
	flagCpu        = runtime.NumCPU()
)

func usage() {
	log.Printf("Usage: %s [flags] -i structure.pdb -o cleaned.pdb\n", path.Base(os.Args[0]))
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.StringVar(&flagInput, "i", flagInput,
		"Input PDB file, or a directory of .pdb files for batch mode.")
	flag.StringVar(&flagOutput, "o", flagOutput,
		"Output PDB file (batch mode: output directory).")
	flag.StringVar(&flagChains, "chains", flagChains,
		"Comma-separated chain IDs to keep (e.g. 'A,B'). Empty keeps all.")
	flag.StringVar(&flagLigands, "ligands", flagLigands,
		"Comma-separated ligand residue names to keep. Empty keeps all non-water heteroatoms.")
	flag.Float64Var(&flagCutoff, "cutoff", flagCutoff,
		"Occlusion distance cutoff in Angstroms (inclusive).")
	flag.BoolVar(&flagNoRenumber, "no-renumber", flagNoRenumber,
		"Do not renumber residues.")
	flag.BoolVar(&flagKeepH, "keep-h", flagKeepH,
		"Keep hydrogens if present.")
	flag.StringVar(&flagAltLoc, "altloc", flagAltLoc,
		"Alternate-location code to keep. Blank is always kept.")
	flag.StringVar(&flagSASA, "sasa", flagSASA,
		"Per-residue accessibility table (CSV/TSV) for hotspot detection.")
	flag.Float64Var(&flagRSA, "rsa", flagRSA,
		"Relative accessibility threshold for hotspot detection.")
	flag.StringVar(&flagDSSP, "dssp", flagDSSP,
		"mkdssp executable; computes the accessibility table when -sasa is not given.")
	flag.StringVar(&flagSASAOut, "sasa-out", flagSASAOut,
		"Write the computed accessibility table to this CSV path (with -dssp).")
	flag.IntVar(&flagCpu, "cpu", flagCpu,
		"The max number of CPUs to use in batch mode.")
	flag.Usage = usage
	flag.Parse()

	if flagInput == "" {
		usage()
	}
	if len(flagAltLoc) != 1 {
		util.Fatalf("-altloc must be a single character, got %q", flagAltLoc)
	}

	opts := clean.DefaultOptions()
	opts.Chains = clean.ParseSet(flagChains)
	opts.Ligands = clean.ParseSet(flagLigands)
	opts.Cutoff = flagCutoff
	opts.Renumber = !flagNoRenumber
	opts.KeepHydrogens = flagKeepH
	opts.KeepAltLoc = flagAltLoc[0]
	opts.SASAPath = flagSASA
	opts.RSAThreshold = flagRSA

	info, err := os.Stat(flagInput)
	if err != nil {
		util.Fatalf("input file not found: %s", flagInput)
	}

	if info.IsDir() {
		cleanDir(flagInput, flagOutput, opts)
		return
	}

	out := flagOutput
	if out == "" {
		out = defaultOutPath(filepath.Dir(flagInput), flagInput)
	}
	util.Assert(cleanOne(flagInput, out, flagSASAOut, opts), "clean %s", flagInput)
}

// cleanOne runs a single cleaning pass, computing the accessibility table
// with mkdssp first when requested.
func cleanOne(in, out, sasaOut string, opts clean.Options) error {
	if flagDSSP != "" && opts.SASAPath == "" && opts.RSAThreshold > 0 {
		table, err := dssp.Run(flagDSSP, in)
		if err != nil {
			return err
		}
		opts.SASATable = table
		if sasaOut != "" {
			if err := sasa.WriteTable(sasaOut, table); err != nil {
				return err
			}
		}
	}
	return clean.CleanFile(in, out, opts)
}

// cleanDir fans the cleaning pass out over every .pdb file under dir. Each
// pass is fully independent; the only shared resource is the filesystem,
// and every pass writes to a distinct output path.
func cleanDir(dir, outDir string, opts clean.Options) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdb"))
	util.Assert(err)
	if len(paths) == 0 {
		util.Fatalf("no .pdb files found in %s", dir)
	}

	if outDir == "" {
		outDir = strings.TrimRight(dir, "/") + "_cleaned"
	}
	util.Assert(os.MkdirAll(outDir, 0755), "create %s", outDir)

	jobs := make(chan string, flagCpu*2)
	wg := &sync.WaitGroup{}
	for i := 0; i < flagCpu; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				out := defaultOutPath(outDir, in)
				util.Warning(cleanOne(in, out, "", opts), "clean %s", in)
			}
		}()
	}
	for _, in := range paths {
		jobs <- in
	}
	close(jobs)
	wg.Wait()
}

func defaultOutPath(dir, in string) string {
	stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, fmt.Sprintf("%s_clean.pdb", sanitize(stem)))
}

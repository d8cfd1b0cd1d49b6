package foldseek

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrToolFailure is returned (wrapped) when foldseek exits with a non-zero
// status or when its alignment output cannot be read.
var ErrToolFailure = errors.New("foldseek failed")

// BinderChain is the chain identifier of binder structures in a target
// directory.
const BinderChain = "A"

// DefaultConfig provides some sane defaults to run foldseek with. For
// example:
//
//	hits, err := foldseek.DefaultConfig.Search(ctx, "egf.pdb", "designs/")
var DefaultConfig = Config{
	Exec:    "foldseek",
	TmpDir:  "",
	Verbose: false,
	Vomit:   false,
}

// Config is used to specify the location of the foldseek binary and where
// its intermediate databases are written. It also controls the level of
// vomit echoed to stderr.
type Config struct {
	// Exec points to the 'foldseek' executable. If 'foldseek' is in your
	// PATH, it is sufficient to leave this as 'foldseek'.
	Exec string

	// TmpDir is the directory in which a private work directory is created
	// for each search. When empty, the system's temporary directory is used.
	TmpDir string

	// Verbose controls whether all commands executed are printed to stderr.
	Verbose bool

	// When Vomit is true, all vomit from commands executed will also be
	// printed to stderr.
	Vomit bool
}

// Hit is a single line of foldseek's tabular alignment output.
type Hit struct {
	Query   string
	Target  string
	Fident  float64
	AlnLen  int
	TMScore float64
}

// Search aligns every structure in targetDir against the reference structure
// and returns one hit per aligned pair, in the order foldseek reports them.
//
// Databases and the alignment file are written to a new directory inside
// conf.TmpDir, which is removed before Search returns. Cancelling ctx kills
// a running foldseek process.
func (conf Config) Search(ctx context.Context,
	reference, targetDir string) ([]Hit, error) {

	work, err := os.MkdirTemp(conf.TmpDir, "foldseek")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(work)

	refDB := filepath.Join(work, "reference_db")
	targetDB := filepath.Join(work, "target_db")
	alignment := filepath.Join(work, "alignment.m8")

	if err := conf.run(ctx, "createdb", reference, refDB); err != nil {
		return nil, err
	}
	if err := conf.run(ctx, "createdb", targetDir, targetDB); err != nil {
		return nil, err
	}
	err = conf.run(ctx,
		"easy-search", refDB, targetDB, alignment, filepath.Join(work, "tmp"),
		"--format-output", "query,target,fident,alnlen,alntmscore",
		"--alignment-type", "1",
		"--prefilter-mode", "0",
		"-e", "1e5",
		"--exhaustive-search")
	if err != nil {
		return nil, err
	}
	return ReadHits(alignment)
}

func (conf Config) run(ctx context.Context, args ...string) error {
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", conf.Exec, strings.Join(args, " "))
	}
	out, err := exec.CommandContext(ctx, conf.Exec, args...).CombinedOutput()
	if conf.Vomit {
		fmt.Fprintf(os.Stderr, "%s\n", string(out))
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %s\n%s",
			ErrToolFailure, conf.Exec, args[0], err, out)
	}
	return nil
}

// ReadHits reads a tab separated alignment file with the columns query,
// target, fident, alnlen and alntmscore.
func ReadHits(fpath string) ([]Hit, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolFailure, err)
	}
	defer f.Close()

	var hits []Hit
	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		hit, err := parseHit(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %s",
				ErrToolFailure, fpath, lineno, err)
		}
		hits = append(hits, hit)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrToolFailure, fpath, err)
	}
	return hits, nil
}

func parseHit(line string) (Hit, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		return Hit{}, fmt.Errorf("expected 5 fields but got %d", len(fields))
	}
	fident, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Hit{}, fmt.Errorf("bad fident '%s'", fields[2])
	}
	alnlen, err := strconv.Atoi(fields[3])
	if err != nil {
		return Hit{}, fmt.Errorf("bad alnlen '%s'", fields[3])
	}
	tm, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Hit{}, fmt.Errorf("bad alntmscore '%s'", fields[4])
	}
	return Hit{
		Query:   fields[0],
		Target:  fields[1],
		Fident:  fident,
		AlnLen:  alnlen,
		TMScore: tm,
	}, nil
}

// Score is the TM-score of one binder against the reference.
type Score struct {
	Name    string
	TMScore float64
}

// Binders keeps the hits whose target is the given chain of a structure and
// strips the chain suffix from the target name. foldseek names each chain
// of a multi-chain structure "<name>_<chain>", so "design_7_A" becomes
// "design_7". A target that ends in the chain letter without an underscore
// loses just that letter.
func Binders(hits []Hit, chain string) []Score {
	var scores []Score
	for _, hit := range hits {
		if !strings.HasSuffix(hit.Target, chain) {
			continue
		}
		name := hit.Target
		if strings.HasSuffix(name, "_"+chain) {
			name = strings.TrimSuffix(name, "_"+chain)
		} else {
			name = strings.TrimSuffix(name, chain)
		}
		scores = append(scores, Score{Name: name, TMScore: hit.TMScore})
	}
	return scores
}

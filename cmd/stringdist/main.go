// Command stringdist computes string distances and nearest matches over
// word lists from the command line.
//
// Usage:
//
//	stringdist dist -method lv -a kitten -b sitting
//	stringdist dist -method osa -x 'words/**/*.txt' -y fixed.txt
//	stringdist match -method dl -maxdist 2 -table 'dict/**/*.txt' qurey wrod
//	stringdist soundex smith smythe
//
// Word-list files hold one entry per line; the literal string NA marks an
// absent value. Table and input files are selected with doublestar glob
// patterns. A YAML profile (-profile) supplies defaults for the shared
// distance flags (-method, -weights, -q, -p, -maxdist, -bytes, -nthread)
// and the logger; explicit flags win.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	stringdist "github.com/fulmenhq/gostringdist"
	"github.com/fulmenhq/gostringdist/config"
	"github.com/fulmenhq/gostringdist/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "dist":
		runDist(args)
	case "match":
		runMatch(args)
	case "soundex":
		runSoundex(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: stringdist <command> [flags]

commands:
  dist     pairwise distances between two word lists
  match    nearest table entry for each query
  soundex  print Soundex codes
  help     show this message

run 'stringdist <command> -h' for command flags
`)
}

// commonFlags carries the options shared by dist and match.
type commonFlags struct {
	method  string
	weights string
	q       int
	p       float64
	maxDist float64
	bytes   bool
	nthread int
	profile string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.method, "method", "", "distance method (osa lv dl hamming lcs qgram cosine jaccard jw soundex)")
	fs.StringVar(&c.weights, "weights", "", "comma-separated edit weights: del,ins,sub,trans")
	fs.IntVar(&c.q, "q", 1, "q-gram size")
	fs.Float64Var(&c.p, "p", 0, "Jaro-Winkler prefix factor")
	fs.Float64Var(&c.maxDist, "maxdist", 0, "distance cap (0 = uncapped)")
	fs.BoolVar(&c.bytes, "bytes", false, "compare raw bytes instead of code points")
	fs.IntVar(&c.nthread, "nthread", 0, "worker count (0 = default)")
	fs.StringVar(&c.profile, "profile", "", "YAML profile file")
	fs.BoolVar(&c.verbose, "verbose", false, "debug logging")
}

// resolve merges profile defaults under the explicit flags and builds the
// library options.
func (c *commonFlags) resolve(fs *flag.FlagSet) (stringdist.Method, stringdist.Options, *zap.Logger, error) {
	var prof *config.Profile
	if c.profile != "" {
		var err error
		prof, err = config.LoadProfile(c.profile)
		if err != nil {
			return "", stringdist.Options{}, nil, err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := stringdist.DefaultOptions()
	logCfg := logging.Config{Level: "warn", Console: true}

	if prof != nil {
		if c.method == "" {
			c.method = prof.Method
		}
		if !set["weights"] && len(prof.Weights) > 0 {
			opts.Weights = prof.Weights
		}
		if !set["q"] && prof.Q > 0 {
			c.q = prof.Q
		}
		if !set["p"] {
			c.p = prof.P
		}
		if !set["maxdist"] {
			c.maxDist = prof.MaxDist
		}
		if !set["bytes"] {
			c.bytes = prof.UseBytes
		}
		if !set["nthread"] {
			c.nthread = prof.NThreads
		}
		if prof.Log.Level != "" {
			logCfg.Level = prof.Log.Level
		}
		logCfg.Console = logCfg.Console || prof.Log.Console
		logCfg.File = prof.Log.File
	}

	if c.method == "" {
		return "", stringdist.Options{}, nil, fmt.Errorf("missing -method (or profile with one)")
	}
	method, err := stringdist.ParseMethod(c.method)
	if err != nil {
		return "", stringdist.Options{}, nil, err
	}

	if set["weights"] {
		w, err := parseWeights(c.weights)
		if err != nil {
			return "", stringdist.Options{}, nil, err
		}
		opts.Weights = w
	}
	opts.Q = c.q
	opts.P = c.p
	if c.maxDist > 0 {
		opts.MaxDist = c.maxDist
	} else {
		opts.MaxDist = math.Inf(1)
	}
	opts.UseBytes = c.bytes
	opts.NThreads = c.nthread

	if c.verbose {
		logCfg.Level = "debug"
	}
	logger, err := logging.New(&logCfg)
	if err != nil {
		return "", stringdist.Options{}, nil, err
	}

	return method, opts, logger, nil
}

func parseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	w := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %w", part, err)
		}
		w = append(w, v)
	}
	return w, nil
}

func runDist(args []string) {
	fs := flag.NewFlagSet("dist", flag.ExitOnError)
	var c commonFlags
	c.register(fs)
	a := fs.String("a", "", "first string (alternative to -x)")
	b := fs.String("b", "", "second string (alternative to -y)")
	x := fs.String("x", "", "glob of word-list files for the first operand")
	y := fs.String("y", "", "glob of word-list files for the second operand")
	_ = fs.Parse(args)

	method, opts, logger, err := c.resolve(fs)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var xs, ys []stringdist.Str
	switch {
	case *x != "" && *y != "":
		if xs, err = readWordLists(*x); err != nil {
			fatal(err)
		}
		if ys, err = readWordLists(*y); err != nil {
			fatal(err)
		}
	default:
		xs = []stringdist.Str{stringdist.S(*a)}
		ys = []stringdist.Str{stringdist.S(*b)}
	}
	logger.Debug("dist", zap.String("method", string(method)),
		zap.Int("x", len(xs)), zap.Int("y", len(ys)))

	d, err := stringdist.Pairwise(context.Background(), xs, ys, method, opts)
	if err != nil {
		fatal(err)
	}

	rows := make([][2]string, len(d))
	for i := range d {
		pair := fmt.Sprintf("%s / %s", display(xs[i%len(xs)]), display(ys[i%len(ys)]))
		rows[i] = [2]string{pair, formatDist(d[i])}
	}
	printTable(rows)
}

func runMatch(args []string) {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	var c commonFlags
	c.register(fs)
	tableGlob := fs.String("table", "", "glob of word-list files forming the lookup table")
	contains := fs.Bool("contains", false, "print true/false instead of matched entries")
	_ = fs.Parse(args)

	method, opts, logger, err := c.resolve(fs)
	if err != nil {
		fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *tableGlob == "" {
		fatal(fmt.Errorf("missing -table"))
	}
	table, err := readWordLists(*tableGlob)
	if err != nil {
		fatal(err)
	}
	queries := stringdist.Strs(fs.Args()...)
	if len(queries) == 0 {
		fatal(fmt.Errorf("no queries given"))
	}
	logger.Debug("match", zap.String("method", string(method)),
		zap.Int("queries", len(queries)), zap.Int("table", len(table)))

	mopts := stringdist.MatchOptions{Options: opts, NoMatch: 0, MatchAbsent: true}

	if *contains {
		got, err := stringdist.Contains(context.Background(), queries, table, method, mopts)
		if err != nil {
			fatal(err)
		}
		rows := make([][2]string, len(got))
		for i, ok := range got {
			rows[i] = [2]string{display(queries[i]), strconv.FormatBool(ok)}
		}
		printTable(rows)
		return
	}

	idx, err := stringdist.NearestMatch(context.Background(), queries, table, method, mopts)
	if err != nil {
		fatal(err)
	}
	rows := make([][2]string, len(idx))
	for i, j := range idx {
		entry := "<no match>"
		if j > 0 {
			entry = display(table[j-1])
		}
		rows[i] = [2]string{display(queries[i]), entry}
	}
	printTable(rows)
}

func runSoundex(args []string) {
	if len(args) == 0 {
		fatal(fmt.Errorf("no words given"))
	}
	rows := make([][2]string, len(args))
	for i, word := range args {
		code, ok := stringdist.SoundexCode(word)
		if !ok {
			code += " (input outside printable ASCII)"
		}
		rows[i] = [2]string{word, code}
	}
	printTable(rows)
}

// readWordLists expands a doublestar glob and reads one entry per line from
// every matched file. The literal NA marks an absent value.
func readWordLists(pattern string) ([]stringdist.Str, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	var out []stringdist.Str
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			if line == "NA" {
				out = append(out, stringdist.Absent)
				continue
			}
			out = append(out, stringdist.S(line))
		}
	}
	return out, nil
}

func display(s stringdist.Str) string {
	if s.Absent {
		return "NA"
	}
	return s.Value
}

func formatDist(d float64) string {
	switch {
	case stringdist.IsAbsent(d):
		return "NA"
	case math.IsInf(d, 1):
		return "Inf"
	default:
		return strconv.FormatFloat(d, 'g', -1, 64)
	}
}

// printTable writes two aligned columns, padding by display width so wide
// runes line up.
func printTable(rows [][2]string) {
	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}
	for _, row := range rows {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(row[0]))
		fmt.Printf("%s%s  %s\n", row[0], pad, row[1])
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "stringdist: %v\n", err)
	os.Exit(1)
}

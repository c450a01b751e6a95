package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ipc2023-classical/planner17-sub002/dimacs"
	"github.com/ipc2023-classical/planner17-sub002/mis"
	"github.com/ipc2023-classical/planner17-sub002/miscache"
	"github.com/ipc2023-classical/planner17-sub002/vset"
)

var solveCmd = &cobra.Command{
	Use:   "solve [files...]",
	Short: "Solve DIMACS graphs",
	Long: `Read each DIMACS file (or standard input when none, or for "-") and print
its maximum independent sets with 1-based vertex numbers.

Files are solved concurrently, each on one goroutine. A time limit makes
the search return the best sets found so far; such results are marked
"timed out" and are never cached.`,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.Duration(keyTimeLimit, 0, "time budget per graph (0 = unlimited)")
	f.Int(keyMaxSets, 1, "maximum number of sets kept per subgraph")
	f.Bool(keyFindAll, false, "keep alternatives of tied vertices to report several sets")
	f.Bool(keyAllRootSets, false, "print every root set instead of the first")
	f.String(keyCacheDir, "", "badger directory for cached results (empty = in-memory)")
	f.Int(keyJobs, 0, "files solved in parallel (default: number of CPUs)")
	f.Bool(keyDump, false, "dump the subgraph registry to stderr")
	_ = viper.BindPFlags(f)
	rootCmd.AddCommand(solveCmd)
}

// solved is the outcome of one input file.
type solved struct {
	name   string
	order  int
	sets   []vset.Set
	res    *mis.Result
	cached bool
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := loadSolveConfig()
	if len(args) == 0 {
		args = []string{"-"}
	}

	cache, err := miscache.Open(cfg.CacheDir)
	if err != nil {
		return err
	}
	defer cache.Close()

	p := pool.NewWithResults[solved]().WithErrors().WithMaxGoroutines(cfg.Jobs)
	for _, name := range args {
		name := name
		p.Go(func() (solved, error) {
			return solveFile(cmd, name, cfg, cache)
		})
	}
	results, err := p.Wait()
	if err != nil {
		return err
	}

	byName := make(map[string]solved, len(results))
	for _, r := range results {
		byName[r.name] = r
	}
	out := cmd.OutOrStdout()
	for _, name := range args {
		if r, ok := byName[name]; ok {
			printSolved(out, r, cfg.AllRootSets)
		}
	}

	return nil
}

func solveFile(cmd *cobra.Command, name string, cfg solveConfig, cache *miscache.Cache) (solved, error) {
	var src io.Reader
	if name == "-" {
		src = cmd.InOrStdin()
	} else {
		data, err := os.ReadFile(name)
		if err != nil {
			return solved{}, errors.Wrap(err, "read input")
		}
		src = bytes.NewReader(data)
	}
	g, err := dimacs.Parse(name, src)
	if err != nil {
		return solved{}, err
	}

	out := solved{name: name, order: g.Order()}
	if sets, ok, err := cache.Get(g, cfg.FindAll, cfg.MaxSets); err != nil {
		klog.Warningf("%s: cache lookup failed: %v", name, err)
	} else if ok {
		out.sets, out.cached = sets, true
		return out, nil
	}

	opts := []mis.Option{
		mis.WithFindAll(cfg.FindAll),
		mis.WithMaxSets(cfg.MaxSets),
		mis.WithTimeLimit(cfg.TimeLimit),
		mis.WithContext(cmd.Context()),
	}
	if cfg.Dump {
		opts = append(opts, mis.WithDump(cmd.ErrOrStderr()))
	}
	res, err := mis.Solve(g, opts...)
	if err != nil {
		return solved{}, errors.Wrapf(err, "%s", name)
	}
	out.res, out.sets = res, res.Sets
	klog.V(1).Infof("%s: %d steps, %d leaves, %d subgraphs, %d twins in %v",
		name, res.Steps, res.Leaves, res.Subgraphs, res.Twins, res.Elapsed)

	if !res.TimedOut {
		if err := cache.Put(g, cfg.FindAll, cfg.MaxSets, res.Sets); err != nil {
			klog.Warningf("%s: cache store failed: %v", name, err)
		}
	}

	return out, nil
}

func printSolved(w io.Writer, r solved, all bool) {
	size := 0
	if len(r.sets) > 0 {
		size = r.sets[0].Count()
	}
	var notes []string
	if r.cached {
		notes = append(notes, "cached")
	}
	if r.res != nil {
		if r.res.TimedOut {
			notes = append(notes, "timed out")
		}
		notes = append(notes, fmt.Sprintf("steps=%d subgraphs=%d twins=%d elapsed=%v",
			r.res.Steps, r.res.Subgraphs, r.res.Twins, r.res.Elapsed.Round(time.Microsecond)))
	}
	fmt.Fprintf(w, "%s: %d vertices, %d set(s) of size %d [%s]\n",
		r.name, r.order, len(r.sets), size, strings.Join(notes, ", "))

	sets := r.sets
	if !all && len(sets) > 1 {
		sets = sets[:1]
	}
	for _, s := range sets {
		vs := make([]string, 0, s.Count())
		s.Each(func(v int) { vs = append(vs, fmt.Sprint(v+1)) })
		fmt.Fprintf(w, "  %s\n", strings.Join(vs, " "))
	}
}

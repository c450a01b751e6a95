package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ipc2023-classical/planner17-sub002/dimacs"
	"github.com/ipc2023-classical/planner17-sub002/graphgen"
	"github.com/ipc2023-classical/planner17-sub002/ngraph"
)

var genCmd = &cobra.Command{
	Use:   "gen <kind> <n>",
	Short: "Write a generated graph in DIMACS format",
	Long: `Generate a fixture graph and write it in DIMACS edge format.

Kinds:
  path, cycle, star, wheel, complete   n vertices
  grid                                 n rows × --cols columns
  bipartite                            K(n, --right)
  random                               G(n, --p), seeded by --seed`,
	Args: cobra.ExactArgs(2),
	RunE: runGen,
}

var (
	genCols   int
	genRight  int
	genProb   float64
	genSeed   int64
	genOutput string
)

func init() {
	f := genCmd.Flags()
	f.IntVar(&genCols, "cols", 0, "grid columns (default: n)")
	f.IntVar(&genRight, "right", 0, "right side of a bipartite graph (default: n)")
	f.Float64Var(&genProb, "p", 0.1, "edge probability of a random graph")
	f.Int64Var(&genSeed, "seed", 1, "random seed")
	f.StringVarP(&genOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(genCmd)
}

// ErrUnknownKind is returned for a gen kind that has no constructor.
var ErrUnknownKind = errors.New("misolve: unknown graph kind")

func generator(kind string, n int) (order int, c graphgen.Constructor, err error) {
	switch kind {
	case "path":
		return n, graphgen.Path(n), nil
	case "cycle":
		return n, graphgen.Cycle(n), nil
	case "star":
		return n, graphgen.Star(n), nil
	case "wheel":
		return n, graphgen.Wheel(n), nil
	case "complete":
		return n, graphgen.Complete(n), nil
	case "grid":
		cols := genCols
		if cols == 0 {
			cols = n
		}
		return n * cols, graphgen.Grid(n, cols), nil
	case "bipartite":
		right := genRight
		if right == 0 {
			right = n
		}
		return n + right, graphgen.CompleteBipartite(n, right), nil
	case "random":
		return n, graphgen.RandomSparse(n, genProb), nil
	}

	return 0, nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

func runGen(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "vertex count %q", args[1])
	}
	order, c, err := generator(args[0], n)
	if err != nil {
		return err
	}
	if order < 0 {
		order = 0
	}
	g, err := graphgen.Build(order, []graphgen.Option{graphgen.WithSeed(genSeed)}, c)
	if err != nil {
		return err
	}

	if genOutput == "" {
		return dimacs.Write(cmd.OutOrStdout(), g)
	}
	if err := writeGraphFile(genOutput, g); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d vertices, %d edges\n", genOutput, g.Order(), len(g.Edges()))

	return nil
}

// writeGraphFile writes g to path; a failed close is reported like a failed write.
func writeGraphFile(path string, g *ngraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := dimacs.Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close output")
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/gridfile"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve [FILE]",
	Short: "Solve a maze with one strategy",
	Long: `Runs one solver on FILE (or the reference maze) and draws the path.
Start defaults to (0,0) and goal to the bottom-right cell unless the file
or the --start/--goal flags say otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := solveConfig{}
		cfg.algo, _ = cmd.Flags().GetString("algo")
		cfg.trace, _ = cmd.Flags().GetBool("trace")
		cfg.verify, _ = cmd.Flags().GetBool("verify")
		cfg.png, _ = cmd.Flags().GetString("png")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			cfg.render = append(cfg.render, render.WithoutColor())
		}
		start, _ := cmd.Flags().GetString("start")
		goal, _ := cmd.Flags().GetString("goal")

		m, err := loadMaze(args, start, goal)
		if err != nil {
			return err
		}
		return runSolve(cmd, m, cfg, logger(cmd))
	},
}

func init() {
	solveCmd.Flags().StringP("algo", "a", astar.Name, "Solver name (see 'gridpath list')")
	solveCmd.Flags().String("start", "", "Start position as row,col")
	solveCmd.Flags().String("goal", "", "Goal position as row,col")
	solveCmd.Flags().Bool("trace", false, "Print every search step")
	solveCmd.Flags().Bool("verify", false, "Check the returned path against the grid")
	solveCmd.Flags().Bool("no-color", false, "Disable coloured output")
	solveCmd.Flags().String("png", "", "Also write the rendered maze to this PNG file")
	rootCmd.AddCommand(solveCmd)
}

type solveConfig struct {
	algo   string
	trace  bool
	verify bool
	png    string
	render []render.Option
}

func runSolve(cmd *cobra.Command, m gridfile.Maze, cfg solveConfig, log *slog.Logger) error {
	s, err := gridpath.Lookup(cfg.algo)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	hook := search.WithOnStep(func(st search.Step) error {
		log.Debug("step", "algo", s.Name(), "kind", st.Kind.String(), "pos", st.Pos.String(), "cost", st.Cost)
		if cfg.trace {
			fmt.Fprintf(out, "%-11s %v cost=%d\n", st.Kind, st.Pos, st.Cost)
		}
		return nil
	})
	res := s.Search(m.Grid, m.Start, m.Goal, search.WithContext(cmd.Context()), hook)
	log.Info("search finished", "algo", s.Name(), "status", res.Status.String(), "length", res.Len(), "expanded", res.Expanded)

	switch res.Status {
	case search.InvalidEndpoint, search.Aborted:
		return res.Err()
	}
	if cfg.verify && res.Found() {
		if err = search.ValidatePath(m.Grid, res.Path, m.Start, m.Goal); err != nil {
			return fmt.Errorf("%s returned a bad path: %w", s.Name(), err)
		}
	}

	if err = render.Write(out, m.Grid, m.Start, m.Goal, res.Path, cfg.render...); err != nil {
		return err
	}
	if cfg.png != "" {
		if err = writePNG(cfg.png, m, res.Path); err != nil {
			return err
		}
		log.Info("image written", "file", cfg.png)
	}
	return summary(out, s.Name(), res)
}

func writePNG(name string, m gridfile.Maze, path []gridgraph.Position) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = render.WritePNG(f, m.Grid, m.Start, m.Goal, path); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}

func summary(w io.Writer, name string, res search.Result) error {
	var err error
	if errors.Is(res.Err(), search.ErrNotFound) {
		_, err = fmt.Fprintf(w, "%s: no path (expanded %d)\n", name, res.Expanded)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s, length %d, expanded %d\n", name, res.Status, res.Len(), res.Expanded)
	}
	return err
}

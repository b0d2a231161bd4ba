package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/storeparty/connect"
	"github.com/delaneyj/storeparty/selector"
	"github.com/delaneyj/storeparty/store"
	"github.com/delaneyj/storeparty/storetest"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	scenariosKey = "scenarios"
	profileKey   = "profile"
	itersKey     = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark store propagation and the props pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  scenariosKey,
				Usage: "YAML file with propagation scenarios",
			},
			&cli.BoolFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to default.pgo",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Iterations for the pipeline benchmark",
				Value: 1_000_000,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(profileKey) {
		f, err := os.Create("default.pgo")
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	scenarios := defaultScenarios()
	if path := cmd.String(scenariosKey); path != "" {
		loaded, err := loadScenarios(path)
		if err != nil {
			return err
		}
		scenarios = loaded
	}

	benchmarkPropagation(scenarios)
	benchmarkPipeline(int(cmd.Uint(itersKey)))
	return nil
}

// scenario is one propagation shape: width consumer chains, each depth
// derived selectors deep, driven for iterations dispatches.
type scenario struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Depth      int    `yaml:"depth"`
	Iterations int    `yaml:"iterations"`
}

func defaultScenarios() []scenario {
	var scenarios []scenario
	for _, w := range []int{1, 10, 100} {
		for _, d := range []int{1, 10, 100} {
			scenarios = append(scenarios, scenario{
				Name:       fmt.Sprintf("propagate: %d * %d", w, d),
				Width:      w,
				Depth:      d,
				Iterations: 100,
			})
		}
	}
	return scenarios
}

func loadScenarios(path string) ([]scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("scenarios %s: %w", path, err)
	}
	return scenarios, nil
}

func addOne(v int) int {
	return v + 1
}

// benchmarkPropagation measures end to end dispatch latency: one store
// mutation flowing through every chain's derived selectors into a reader
// that re-renders synchronously.
func benchmarkPropagation(scenarios []scenario) {
	tbl := table.NewWriter()
	tbl.SetTitle("Store Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "renders", "avg", "min", "p75", "p99", "max"})

	for _, sc := range scenarios {
		st := storetest.New(0, func(s int, _ store.Action) int {
			return s + 1
		})

		renders := 0
		for i := 0; i < sc.Width; i++ {
			sel := func(s int) int { return s }
			for j := 0; j < sc.Depth; j++ {
				sel = selector.NewDerived1(sel, addOne).Fn()
			}

			var r *connect.Reader[int, int]
			r = connect.NewReader[int, int](st, nil, sel, connect.OnRender(func() {
				renders++
				if _, err := r.Read(); err != nil {
					log.Fatal(err)
				}
				r.Commit()
			}))
			if _, err := r.Read(); err != nil {
				log.Fatal(err)
			}
			r.Commit()
		}

		tach := tachymeter.New(&tachymeter.Config{Size: sc.Iterations})
		for i := 0; i < sc.Iterations; i++ {
			start := time.Now()
			st.Dispatch(nil)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				sc.Name,
				renders,
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	tbl.Render()
}

type pipelineState struct {
	Count int
	Label string
}

// benchmarkPipeline compares pure and impure Compute throughput, half the
// iterations with a changed state and half with the state unchanged, which
// is where pure mode earns its keep.
func benchmarkPipeline(iters int) {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"mode", "iterations", "time", "computeRate"})

	mapState := func(s pipelineState) connect.Props {
		return connect.Props{"count": s.Count, "label": s.Label}
	}
	mapDispatch := func(d store.Dispatch[pipelineState]) connect.Props {
		return connect.Props{"bump": func() { d(nil) }}
	}
	dispatch := store.Dispatch[pipelineState](func(_ store.Action) pipelineState {
		return pipelineState{}
	})

	for _, mode := range []struct {
		name string
		opts []connect.Option
	}{
		{name: "pure"},
		{name: "impure", opts: []connect.Option{connect.Impure()}},
	} {
		p, err := connect.NewPipeline[pipelineState](dispatch, mapState, mapDispatch, nil, mode.opts...)
		if err != nil {
			log.Fatal(err)
		}

		own := connect.Props{"id": 42}
		state := pipelineState{Label: "benchmark"}
		start := time.Now()
		for i := 0; i < iters; i++ {
			if i%2 == 0 {
				state.Count++
			}
			if _, err := p.Compute(state, own); err != nil {
				log.Fatal(err)
			}
		}
		duration := time.Since(start)

		rate := float64(iters) / (float64(duration) / float64(time.Millisecond))
		tbl.Append([]string{
			mode.name,
			humanize.Comma(int64(iters)),
			fmt.Sprint(duration),
			humanize.Comma(int64(rate)) + "/ms",
		})
	}

	tbl.Render()
}

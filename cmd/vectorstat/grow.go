package main

import (
	"fmt"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/pavanmanishd/vector"
)

// growCommand appends count elements to a vector and prints its statistics.
type growCommand struct {
	count   int
	reserve int
	limit   string
	metrics bool
	logger  func() log.Logger
}

func (cmd *growCommand) run(_ *kingpin.ParseContext) error {
	logger := cmd.logger()

	var budget *vector.Budget
	if cmd.limit != "" {
		n, err := humanize.ParseBytes(cmd.limit)
		if err != nil {
			return fmt.Errorf("invalid --limit %q: %w", cmd.limit, err)
		}
		budget = vector.NewBudget(int64(n))
	}

	reg := prometheus.NewRegistry()
	v, err := vector.NewReserved[int64](
		vector.ReserveCapacity(cmd.reserve),
		vector.WithBudget(budget),
		vector.WithLogger(logger),
		vector.WithRecorder(vector.NewPrometheusRecorder(reg)),
	)
	if err != nil {
		exitWithErr(fmt.Errorf("failed to reserve capacity: %w", err))
	}
	defer v.Release()

	appended := 0
	for ; appended < cmd.count; appended++ {
		if err := v.PushBack(int64(appended)); err != nil {
			level.Error(logger).Log("msg", "append failed", "index", appended, "err", err)
			break
		}
	}
	level.Info(logger).Log("msg", "growth finished", "requested", cmd.count, "appended", appended)

	m := v.Metrics()
	fmt.Println("Vector:")
	fmt.Printf("\tsize: %s, capacity: %s, utilization: %.2f%%\n",
		humanize.Comma(int64(m.Size)), humanize.Comma(int64(m.Capacity)), m.Utilization*100)
	fmt.Printf("\treallocations: %d, reserved: %s\n", m.Reallocations, humanize.IBytes(uint64(m.BytesReserved)))
	if budget != nil {
		fmt.Printf("\tbudget: %s of %s\n", humanize.IBytes(uint64(budget.Usage())), humanize.IBytes(uint64(budget.Limit())))
	}

	if cmd.metrics {
		return printMetrics(reg)
	}
	return nil
}

func printMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })

	fmt.Println("Metrics:")
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var value float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = metric.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Printf("\t%s: %s\n", mf.GetName(), humanize.Ftoa(value))
		}
	}
	return nil
}

func addGrowCommand(app *kingpin.Application, logger func() log.Logger) {
	cmd := &growCommand{logger: logger}
	grow := app.Command("grow", "Append elements to an int64 vector and print growth statistics.").Action(cmd.run)
	grow.Flag("count", "Number of elements to append.").Short('n').Default("1000").IntVar(&cmd.count)
	grow.Flag("reserve", "Capacity to reserve before appending.").Default("0").IntVar(&cmd.reserve)
	grow.Flag("limit", "Memory budget for the vector, e.g. 64MiB. Unlimited if empty.").StringVar(&cmd.limit)
	grow.Flag("metrics", "Print the recorded Prometheus metrics.").BoolVar(&cmd.metrics)
}

// Package main provides the fixedmath CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/born-ml/fixedmath/internal/config"
	"github.com/born-ml/fixedmath/internal/nnet"
	"github.com/born-ml/fixedmath/internal/parallel"
	"github.com/born-ml/fixedmath/internal/serialization"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fixedmath: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "fixedmath %s\n", version)
		return nil
	case "train":
		return runTrain(ctx, args[1:], stdout)
	case "eval":
		return runEval(args[1:], stdout)
	case "sweep":
		return runSweep(ctx, args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stdout)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "fixedmath - seeded feed-forward networks on fixed-dimension math")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                              Show version")
	fmt.Fprintln(w, "  train -config run.yaml [-out w.bin]  Train and save weights")
	fmt.Fprintln(w, "  eval  -config run.yaml [-weights f]  Evaluate saved weights on the samples")
	fmt.Fprintln(w, "  sweep -config run.yaml -seeds 1,2,3  Train one network per seed concurrently")
}

// loadRun parses the shared -config flag plus any extra flags registered by
// setup, then loads the config and its logger.
func loadRun(name string, args []string, setup func(fs *flag.FlagSet)) (*config.Config, *zap.Logger, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "run.yaml", "Path to the YAML run config")
	if setup != nil {
		setup(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newNetwork(cfg *config.Config, seed uint64) (*nnet.Network, error) {
	rule, err := cfg.BiasRule()
	if err != nil {
		return nil, err
	}
	return nnet.New(cfg.Shape(), &seed, cfg.LearningRate, nnet.WithBiasRule(rule))
}

func saveWeights(net *nnet.Network, cfg *config.Config, path string, logger *zap.Logger) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	if err := net.SaveFile(path, nnet.WithByteOrder(order)); err != nil {
		return err
	}
	sum, err := serialization.ChecksumFile(path)
	if err != nil {
		return err
	}
	logger.Info("weights saved",
		zap.String("path", path),
		zap.Int64("bytes", net.EncodedSize()),
		zap.String("xxhash", fmt.Sprintf("%016x", sum)),
	)
	return nil
}

func runTrain(ctx context.Context, args []string, stdout io.Writer) error {
	var out string
	cfg, logger, err := loadRun("train", args, func(fs *flag.FlagSet) {
		fs.StringVar(&out, "out", "", "Weight file to write (overrides config weights)")
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if out == "" {
		out = cfg.Weights
	}

	net, err := newNetwork(cfg, cfg.Seed)
	if err != nil {
		return err
	}
	tr := nnet.NewTrainer(net,
		nnet.WithEpochs(cfg.Epochs),
		nnet.WithLogEvery(cfg.LogEvery),
		nnet.WithLogger(logger.With(zap.Uint64("seed", cfg.Seed))),
	)
	res, err := tr.Train(ctx, cfg.Samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "run %s: %d epochs, cost %.6f -> %.6f\n",
		res.RunID, res.Epochs, res.Costs[0], res.FinalCost())

	if out == "" {
		return nil
	}
	return saveWeights(net, cfg, out, logger)
}

func runEval(args []string, stdout io.Writer) error {
	var weights string
	cfg, logger, err := loadRun("eval", args, func(fs *flag.FlagSet) {
		fs.StringVar(&weights, "weights", "", "Weight file to read (overrides config weights)")
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if weights == "" {
		weights = cfg.Weights
	}
	if weights == "" {
		return fmt.Errorf("%w: eval needs a weight file", errUsage)
	}

	net, err := newNetwork(cfg, cfg.Seed)
	if err != nil {
		return err
	}
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	if err := net.LoadFile(weights, nnet.WithByteOrder(order)); err != nil {
		return err
	}

	outputs, cost, err := nnet.Evaluate(net, cfg.Samples)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tTARGET\tOUTPUT")
	for i, s := range cfg.Samples {
		fmt.Fprintf(tw, "%v\t%v\t%s\n", s.Input, s.Target, formatFloats(outputs[i]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "mean cost %.6f\n", cost)
	return nil
}

func runSweep(ctx context.Context, args []string, stdout io.Writer) error {
	var (
		seeds   string
		workers int
		out     string
	)
	cfg, logger, err := loadRun("sweep", args, func(fs *flag.FlagSet) {
		fs.StringVar(&seeds, "seeds", "", "Comma-separated seeds to train")
		fs.IntVar(&workers, "workers", 0, "Concurrent trainings (0 = config or CPU count)")
		fs.StringVar(&out, "out", "", "Write the best network's weights here")
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	list, err := parseSeeds(seeds)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		list = []uint64{cfg.Seed}
	}

	pc := parallel.DefaultConfig()
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers > 0 {
		pc = parallel.Config{Enabled: workers > 1, NumWorkers: workers}
	}

	rule, err := cfg.BiasRule()
	if err != nil {
		return err
	}
	results, err := nnet.Sweep(ctx, nnet.SweepSpec{
		Shape:        cfg.Shape(),
		LearningRate: cfg.LearningRate,
		BiasRule:     rule,
		Epochs:       cfg.Epochs,
		Seeds:        list,
		Logger:       logger,
	}, cfg.Samples, pc)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSEED\tCOST")
	for i, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\n", i+1, r.Seed, r.Result.FinalCost())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if out == "" {
		return nil
	}
	return saveWeights(results[0].Network, cfg, out, logger.With(zap.Uint64("seed", results[0].Seed)))
}

func parseSeeds(s string) ([]uint64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	seeds := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad seed %q", errUsage, p)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Command mpgraph is a small demonstration CLI for the message-passing
// engine: it builds a fixed-gain smoothing chain with Gaussian priors and
// observations, runs demand-driven evaluation, and prints the marginal
// belief over the hidden variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/tverien/mpgraph/core"
	"github.com/tverien/mpgraph/message"
	"github.com/tverien/mpgraph/nodes"
	"github.com/tverien/mpgraph/propagate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		depth   int
	)

	root := &cobra.Command{
		Use:           "mpgraph",
		Short:         "factor-graph message-passing engine demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log computation and invalidation steps")
	root.PersistentFlags().IntVar(&depth, "depth", propagate.DefaultDepthBudget, "recursion depth budget")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "run inference on a gain/equality smoothing chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, verbose, depth)
		},
	}
	root.AddCommand(demo)

	return root
}

// runDemo infers the hidden variable x from a Gaussian prior, a direct
// noisy observation of x, and an indirect observation of y = 0.5·x:
//
//	prior ──[=]── direct observation
//	         │
//	       gain(0.5) ── indirect observation
func runDemo(cmd *cobra.Command, verbose bool, depth int) error {
	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		defer func() { _ = dev.Sync() }()
		logger = dev
	}
	opts := []propagate.Option{
		propagate.WithLogger(logger),
		propagate.WithDepthBudget(depth),
	}

	prior, err := nodes.NewConstant("prior", message.NewGaussianMoment(0, 100))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	direct, err := nodes.NewConstant("direct-observation", message.NewGaussianMeanPrecision(2.4, 1))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	indirect, err := nodes.NewConstant("indirect-observation", message.NewGaussianMeanPrecision(1.2, 4))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	gain, err := nodes.NewFixedGain("gain", mat.NewDense(1, 1, []float64{0.5}))
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	eq, err := nodes.NewEquality("x", 3)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	xEdge, err := core.ConnectNodes(prior, eq)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err = core.ConnectNodes(eq, gain); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err = core.ConnectNodes(direct, eq); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err = core.ConnectNodes(gain, indirect); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	if _, err = propagate.CalculateForwardMessage(xEdge, opts...); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if _, err = propagate.CalculateBackwardMessage(xEdge, opts...); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	belief, err := propagate.CalculateEdgeMarginal(xEdge, opts...)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	g, _ := belief.Gaussian()
	m, v, _ := g.ToMoment().Moment()
	cmd.Printf("marginal over x: mean=%.6f variance=%.6f\n", m, v)

	return nil
}

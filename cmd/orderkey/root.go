package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey"
)

type options struct {
	variant string
	jitter  int
	seed    int64
	verbose bool

	v      *orderkey.Variant
	j      orderkey.Jitter
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "orderkey",
		Short:        "Generate and inspect order keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&o.variant, "variant", orderkey.Balanced.String(), "key variant: balanced or lexicon")
	f.IntVar(&o.jitter, "jitter", 0, "let each generated digit stray up to N steps from the centre")
	f.Int64Var(&o.seed, "seed", 0, "jitter seed, 0 picks one from the clock")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newBetweenCmd(o),
		newAfterCmd(o),
		newBeforeCmd(o),
		newCompareCmd(o),
		newNormalizeCmd(o),
		newSeqCmd(o),
	)
	return root
}

func (o *options) setup(stderr io.Writer) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	v, ok := orderkey.VariantByName(o.variant)
	if !ok {
		return fmt.Errorf("unknown variant %q", o.variant)
	}
	o.v = v

	if o.jitter > 0 {
		seed := o.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.j = orderkey.RandJitter{R: rand.New(rand.NewSource(seed))}
		o.logger.Debug("jitter enabled", "range", o.jitter, "seed", seed)
	}
	return nil
}

func (o *options) parse(args ...string) ([]orderkey.Key, error) {
	keys := make([]orderkey.Key, len(args))
	for i, s := range args {
		k, err := o.v.Parse(s)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

func (o *options) bisect(a, b orderkey.Key) (orderkey.Key, error) {
	var (
		k   orderkey.Key
		err error
	)
	if o.j != nil {
		k, err = a.BisectJitter(b, o.j, o.jitter)
	} else {
		k, err = a.Bisect(b)
	}
	if err == nil {
		o.logger.Debug("bisect", "variant", o.v.String(), "a", a.String(), "b", b.String(), "key", k.String())
	}
	return k, err
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey"
)

func newBetweenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "between A B",
		Short: "Print a key strictly between A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := o.parse(args...)
			if err != nil {
				return err
			}
			k, err := o.bisect(keys[0], keys[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
}

func newAfterCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "after K",
		Short: "Print a key greater than K",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := o.parse(args...)
			if err != nil {
				return err
			}
			k, err := keys[0].BisectAfter()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
}

func newBeforeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "before K",
		Short: "Print a key less than K",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := o.parse(args...)
			if err != nil {
				return err
			}
			k, err := keys[0].BisectBefore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
}

func newCompareCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, with or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := o.parse(args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keys[0].Compare(keys[1]))
			return nil
		},
	}
}

func newNormalizeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize K",
		Short: "Print the canonical text of K",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := o.parse(args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keys[0].Normalize())
			return nil
		},
	}
}

const (
	directionAfter  = "after"
	directionBefore = "before"
	directionNarrow = "narrow"
)

func newSeqCmd(o *options) *cobra.Command {
	var (
		from, to, direction string
		count               int
	)
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Print a chain of keys, each generated from the previous one",
		Long: `Print a chain of keys starting from --from.

With --direction after or before each key follows or precedes the previous
one. With --direction narrow each key bisects the previous one and --to, so
the chain closes in on --to without reaching it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys, err := o.parse(from)
			if err != nil {
				return err
			}
			base := keys[0]

			var edge orderkey.Key
			switch direction {
			case directionAfter, directionBefore:
			case directionNarrow:
				if !cmd.Flags().Changed("to") {
					return errors.New("--to is required with --direction narrow")
				}
				if keys, err = o.parse(to); err != nil {
					return err
				}
				edge = keys[0]
			default:
				return fmt.Errorf("unknown direction %q", direction)
			}

			out := cmd.OutOrStdout()
			for i := 1; i <= count; i++ {
				switch direction {
				case directionAfter:
					base, err = base.BisectAfter()
				case directionBefore:
					base, err = base.BisectBefore()
				case directionNarrow:
					base, err = o.bisect(base, edge)
				}
				if err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
				o.logger.Debug("step", "n", i, "key", base.String(), "len", base.Len())
				fmt.Fprintln(out, base)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "first key of the chain, excluded from the output")
	f.StringVar(&to, "to", "", "key to close in on with --direction narrow")
	f.IntVarP(&count, "count", "n", 10, "number of keys to print")
	f.StringVar(&direction, "direction", directionAfter, "after, before or narrow")
	return cmd
}

package cli

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	permgen "github.com/Harry-Chen/permutation-generator"
)

func newStepCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "step <permutation>",
		Short: "Move through the scheme's ordering by a signed offset",
		Long: `Print the permutation that lies --by positions after (or, when negative,
before) the given permutation in the selected scheme's ordering.`,
		Example: `  permgen step --by 2020 83674521
  permgen step --scheme sjt --by -2020 83674521`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}
			p, err := parsePermutationArg(args[0])
			if err != nil {
				return err
			}
			delta, err := parseBig("offset", by)
			if err != nil {
				return err
			}

			q, err := s.Step(p, delta)
			if err != nil {
				return errors.Wrapf(err, "failed to step %s by %s", p, delta)
			}
			loggerFromContext(cmd.Context()).Debug("Stepped", "scheme", s, "from", p, "by", delta)
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "1", "signed offset")
	return cmd
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "distance <from> <to>",
		Short:   "Print rank(to) - rank(from) under the scheme",
		Example: `  permgen distance 1234 4321`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}
			a, err := parsePermutationArg(args[0])
			if err != nil {
				return err
			}
			b, err := parsePermutationArg(args[1])
			if err != nil {
				return err
			}
			d, err := s.Distance(a, b)
			if err != nil {
				return errors.Wrap(err, "distance")
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <n>",
		Short: "Enumerate permutations of size n in rank order",
		Example: `  permgen list 3
  permgen list --scheme sjt --limit 10 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}
			n, err := parseBig("size", args[0])
			if err != nil {
				return err
			}
			if !n.IsInt64() || n.Int64() < 1 || n.Int64() > 1<<16 {
				return errors.Errorf("invalid size %s", n)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			prog := newProgress(logger)
			count := 0
			err = s.Enumerate(int(n.Int64()), func(rank *big.Int, p permgen.Permutation) bool {
				if ctx.Err() != nil || (limit > 0 && count >= limit) {
					return false
				}
				fmt.Fprintf(out, "%s %s\n", rank, p)
				count++
				return true
			})
			if err != nil {
				return errors.Wrap(err, "enumerate")
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Listed %d permutations", count))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "stop after this many permutations (0 = all)")
	return cmd
}

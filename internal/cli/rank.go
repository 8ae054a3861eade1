package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Harry-Chen/permutation-generator/radix"
)

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <permutation>",
		Short: "Print the intermediate number and rank of a permutation",
		Long: `Encode a permutation under the selected scheme.

The permutation is a digit string such as 83674521, or a comma or space
separated list for sizes above nine. Output is the intermediate number
followed by its rank.`,
		Example: `  permgen rank 83674521
  permgen rank --scheme sjt 83674521
  permgen rank "10,3,1,9,2,8,4,7,5,6"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}
			p, err := parsePermutationArg(args[0])
			if err != nil {
				return err
			}

			num, err := s.FromPermutation(p)
			if err != nil {
				return errors.Wrapf(err, "failed to encode %s", p)
			}
			logger.Debug("Encoded permutation", "scheme", s, "size", len(p), "places", num.Len())

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", num, num.Natural())
			return nil
		},
	}
}

func newUnrankCmd() *cobra.Command {
	var (
		digits  int
		numeral bool
	)

	cmd := &cobra.Command{
		Use:   "unrank <rank|number>",
		Short: "Decode a rank or intermediate number into a permutation",
		Long: `Decode a rank in [0, n!) into the permutation of size n at that
position of the selected scheme's ordering.

With --numeral the argument is an intermediate number written one digit per
place (for example 7244221) instead of a rank.`,
		Example: `  permgen unrank --digits 8 37313
  permgen unrank --digits 8 --numeral 7244221
  permgen unrank --scheme decremental --digits 8 --numeral 1222447`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}
			n, err := digitsFor(cmd, digits)
			if err != nil {
				return err
			}

			var num radix.Number
			if numeral {
				num, err = radix.ParseNumber(s.Kind(), args[0], n)
			} else {
				rank, perr := parseBig("rank", args[0])
				if perr != nil {
					return perr
				}
				num, err = radix.FromNatural(s.Kind(), rank, n)
			}
			if err != nil {
				return errors.Wrapf(err, "invalid argument %q", args[0])
			}
			logger.Debug("Decoding", "scheme", s, "number", num, "rank", num.Natural())

			p, err := s.ToPermutation(num)
			if err != nil {
				return errors.Wrapf(err, "failed to decode %s", num)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().IntVarP(&digits, "digits", "n", 0, "permutation size (default from config)")
	cmd.Flags().BoolVar(&numeral, "numeral", false, "read the argument as intermediate-number digits")
	return cmd
}

// digitsFor resolves the permutation size from the flag or the config file.
func digitsFor(cmd *cobra.Command, flag int) (int, error) {
	n := flag
	if !cmd.Flags().Changed("digits") {
		n = configFromContext(cmd.Context()).Digits
	}
	if n < 1 {
		return 0, errors.New("--digits must be at least 1 (set it by flag or config)")
	}
	return n, nil
}

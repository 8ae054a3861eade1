package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Harry-Chen/permutation-generator/radix"
)

// arithOpts holds the flags shared by add and sub.
type arithOpts struct {
	kind    string
	digits  int
	numeral bool
}

func (o *arithOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.kind, "kind", "k", "inc", "number system: inc or dec")
	cmd.Flags().IntVarP(&o.digits, "digits", "n", 0, "digit budget (default from config)")
	cmd.Flags().BoolVar(&o.numeral, "numeral", false, "read operands as digit strings instead of naturals")
}

// operands parses both arguments under the selected kind and budget.
func (o *arithOpts) operands(cmd *cobra.Command, args []string) (radix.Number, radix.Number, error) {
	var kind radix.Kind
	switch strings.ToLower(o.kind) {
	case "inc", "incremental":
		kind = radix.Incremental
	case "dec", "decremental":
		kind = radix.Decremental
	default:
		return radix.Number{}, radix.Number{}, errors.Errorf("invalid --kind %q: want inc or dec", o.kind)
	}
	n, err := digitsFor(cmd, o.digits)
	if err != nil {
		return radix.Number{}, radix.Number{}, err
	}

	nums := make([]radix.Number, 2)
	for i, arg := range args {
		if o.numeral {
			nums[i], err = radix.ParseNumber(kind, arg, n)
		} else {
			v, perr := parseBig("operand", arg)
			if perr != nil {
				return radix.Number{}, radix.Number{}, perr
			}
			nums[i], err = radix.FromNatural(kind, v, n)
		}
		if err != nil {
			return radix.Number{}, radix.Number{}, errors.Wrapf(err, "invalid operand %q", arg)
		}
	}
	return nums[0], nums[1], nil
}

func newAddCmd() *cobra.Command {
	opts := &arithOpts{}
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two intermediate numbers",
		Example: `  permgen add --kind inc --digits 9 279905 2020
  permgen add --kind dec --digits 8 --numeral 1222447 0011004`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := opts.operands(cmd, args)
			if err != nil {
				return err
			}
			sum, err := a.Add(b)
			if err != nil {
				return errors.Wrap(err, "add")
			}
			loggerFromContext(cmd.Context()).Debug("Added", "a", a, "b", b)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sum, sum.Natural())
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newSubCmd() *cobra.Command {
	opts := &arithOpts{}
	cmd := &cobra.Command{
		Use:     "sub <a> <b>",
		Short:   "Subtract intermediate number b from a",
		Example: `  permgen sub --kind inc --digits 9 279905 2020`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := opts.operands(cmd, args)
			if err != nil {
				return err
			}
			diff, err := a.Sub(b)
			if err != nil {
				return errors.Wrap(err, "sub")
			}
			loggerFromContext(cmd.Context()).Debug("Subtracted", "a", a, "b", b)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", diff, diff.Natural())
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

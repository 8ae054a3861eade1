package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	permgen "github.com/Harry-Chen/permutation-generator"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare <permutation>",
		Short:   "Show a permutation's intermediate number and rank under every scheme",
		Example: `  permgen compare 83674521`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePermutationArg(args[0])
			if err != nil {
				return err
			}

			rows := [][]string{{"SCHEME", "NUMBER", "RANK"}}
			for _, s := range permgen.Schemes() {
				num, err := s.FromPermutation(p)
				if err != nil {
					return errors.Wrapf(err, "failed to encode %s under %s", p, s)
				}
				rows = append(rows, []string{s.String(), num.String(), num.Natural().String()})
			}

			widths := columnWidths(rows)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(row(widths, rows[0]...)))
			for _, r := range rows[1:] {
				fmt.Fprintln(out, row(widths, r...))
			}
			fmt.Fprintln(out, StyleDim.Render(fmt.Sprintf("%s of %d", p, len(p))))
			return nil
		},
	}
}

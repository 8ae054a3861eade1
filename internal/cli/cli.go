// Package cli implements the permgen command-line interface.
//
// The commands convert permutations to intermediate numbers and ranks and
// back, do arithmetic on intermediate numbers, walk a scheme's ordering and
// derive keyed shuffles. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - rank: encode a permutation and print its intermediate number and rank
//   - unrank: decode a rank into a permutation
//   - add, sub: intermediate-number arithmetic
//   - step, distance: move through or measure a scheme's ordering
//   - list: enumerate permutations in rank order
//   - compare: show every scheme's encoding of one permutation
//   - shuffle: keyed permutation of a string's characters
//
// # Configuration
//
// Defaults for --scheme, --digits, --key and --tweak can be kept in a TOML
// file named by --config or $PERMGEN_CONFIG:
//
//	scheme = "sjt"
//	digits = 8
//	key    = "000102030405060708090a0b0c0d0e0f"
//	tweak  = "seating"
//
// Flags given on the command line win over the file.
package cli

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	permgen "github.com/Harry-Chen/permutation-generator"
)

// appName is used for the root command and the config env variable.
const appName = "permgen"

// ctxKey is the type for context keys used in this package.
type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

// withConfig returns a new context carrying cfg.
func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the loaded config, or an empty one.
func configFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return &Config{}
}

// schemeFor resolves the scheme for cmd: the --scheme flag when set, then the
// config file, then Lexicographical.
func schemeFor(cmd *cobra.Command) (permgen.Scheme, error) {
	name, _ := cmd.Flags().GetString("scheme")
	if !cmd.Flags().Changed("scheme") {
		if cfg := configFromContext(cmd.Context()); cfg.Scheme != "" {
			name = cfg.Scheme
		}
	}
	s, err := permgen.ParseScheme(name)
	if err != nil {
		return 0, errors.Wrap(err, "invalid --scheme")
	}
	return s, nil
}

// parseBig parses a decimal integer argument, sign allowed.
func parseBig(what, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("invalid %s %q: not a decimal integer", what, s)
	}
	return v, nil
}

// parsePermutationArg wraps permgen.ParsePermutation with the argument name.
func parsePermutationArg(s string) (permgen.Permutation, error) {
	p, err := permgen.ParsePermutation(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid permutation %q", s)
	}
	return p, nil
}

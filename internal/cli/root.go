package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Values are normally injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the permgen CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug level with --verbose (-v).
// The logger and the loaded config are attached to the command context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "permgen ranks, unranks and steps through permutations",
		Long:         `permgen maps permutations of 1..n to mixed-radix intermediate numbers under four schemes (lexicographical, incremental, decremental, sjt), so permutations can be ranked, unranked and stepped through with integer arithmetic.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := loadConfig(configPath(configFile), logger)
			if err != nil {
				return err
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("permgen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file (default $"+configEnv+")")
	root.PersistentFlags().StringP("scheme", "s", "lexicographical", "mapping: lexicographical, incremental, decremental or sjt")

	root.AddCommand(newRankCmd())
	root.AddCommand(newUnrankCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newSubCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newShuffleCmd())

	return root
}

package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Harry-Chen/permutation-generator/tinkperm"
)

func newShuffleCmd() *cobra.Command {
	var (
		keyHex  string
		tweak   string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "shuffle <text>",
		Short: "Reorder the characters of text with a keyed permutation",
		Long: `Derive a permutation from an HMAC-SHA256 key and a tweak, then use it to
reorder the characters of text. The same key, tweak and length always give
the same reordering; --reverse undoes it.`,
		Example: `  permgen shuffle --key 000102030405060708090a0b0c0d0e0f --tweak seats ABCDEFGH
  permgen shuffle --key 000102030405060708090a0b0c0d0e0f --tweak seats --reverse DAGBHECF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := configFromContext(cmd.Context())

			s, err := schemeFor(cmd)
			if err != nil {
				return err
			}

			var key []byte
			if cmd.Flags().Changed("key") {
				key, err = hex.DecodeString(keyHex)
				if err != nil {
					return errors.Wrap(err, "--key is not valid hex")
				}
			} else if key, err = cfg.KeyBytes(); err != nil {
				return err
			}
			if len(key) == 0 {
				return errors.New("a key is required (set --key or key in config)")
			}
			if !cmd.Flags().Changed("tweak") {
				tweak = cfg.Tweak
			}

			handle, err := tinkperm.NewKeysetHandleFromKey(key)
			if err != nil {
				return errors.Wrap(err, "failed to create keyset")
			}
			p, err := tinkperm.New(handle, []byte(tweak), tinkperm.WithScheme(s))
			if err != nil {
				return errors.Wrap(err, "failed to create permuter")
			}

			var out string
			if reverse {
				out, err = p.Unshuffle(args[0])
			} else {
				out, err = p.Shuffle(args[0])
			}
			if err != nil {
				return err
			}
			logger.Debug("Shuffled", "scheme", s, "reverse", reverse, "length", len([]rune(args[0])))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded HMAC key, at least 16 bytes (default from config)")
	cmd.Flags().StringVar(&tweak, "tweak", "", "public tweak (default from config)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "undo a previous shuffle")
	return cmd
}

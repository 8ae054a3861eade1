package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permgen "github.com/Harry-Chen/permutation-generator"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(configEnv, "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
	SetVersion("", "", "")
}

func TestRankCmd(t *testing.T) {
	tests := []struct {
		scheme string
		want   string
	}{
		{"lex", "Inc(7244221) 37313\n"},
		{"incremental", "Inc(7442221) 38705\n"},
		{"dec", "Dec(1222447) 37895\n"},
		{"sjt", "Dec(1012120) 22584\n"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			out, err := run(t, "rank", "--scheme", tt.scheme, "83674521")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRankCmd_Invalid(t *testing.T) {
	_, err := run(t, "rank", "1224")
	assert.ErrorIs(t, err, permgen.ErrInvalidPermutation)

	_, err = run(t, "rank", "--scheme", "bogus", "1234")
	assert.ErrorIs(t, err, permgen.ErrUnknownScheme)
}

func TestUnrankCmd(t *testing.T) {
	out, err := run(t, "unrank", "--digits", "8", "37313")
	require.NoError(t, err)
	assert.Equal(t, "83674521\n", out)

	out, err = run(t, "unrank", "-s", "dec", "-n", "8", "--numeral", "1222447")
	require.NoError(t, err)
	assert.Equal(t, "83674521\n", out)

	_, err = run(t, "unrank", "37313")
	assert.Error(t, err)

	_, err = run(t, "unrank", "-n", "3", "6")
	assert.ErrorIs(t, err, permgen.ErrLengthMismatch)
}

func TestArithCmds(t *testing.T) {
	out, err := run(t, "add", "--kind", "inc", "--digits", "9", "279905", "2020")
	require.NoError(t, err)
	assert.Equal(t, "Inc(67631311) 281925\n", out)

	out, err = run(t, "sub", "--kind", "inc", "--digits", "9", "279905", "2020")
	require.NoError(t, err)
	assert.Equal(t, "Inc(67053201) 277885\n", out)

	_, err = run(t, "sub", "-k", "dec", "-n", "9", "2020", "279905")
	assert.Error(t, err)

	_, err = run(t, "add", "--kind", "hex", "-n", "9", "1", "2")
	assert.Error(t, err)
}

func TestStepCmd(t *testing.T) {
	out, err := run(t, "step", "--by", "2020", "83674521")
	require.NoError(t, err)
	assert.Equal(t, "86457231\n", out)

	out, err = run(t, "step", "--scheme", "sjt", "--by", "-2020", "83674521")
	require.NoError(t, err)
	assert.Equal(t, "47683251\n", out)

	_, err = run(t, "step", "--by", "1", "4321")
	assert.ErrorIs(t, err, permgen.ErrBadRank)
}

func TestDistanceCmd(t *testing.T) {
	out, err := run(t, "distance", "1234", "4321")
	require.NoError(t, err)
	assert.Equal(t, "23\n", out)

	out, err = run(t, "distance", "-s", "sjt", "1234", "4321")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list", "--scheme", "sjt", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 123\n1 132\n2 312\n3 321\n4 231\n5 213\n", out)

	out, err = run(t, "list", "--limit", "2", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 1234\n1 1243\n", out)
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, "compare", "83674521")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "SCHEME")
	assert.Contains(t, lines[1], "Inc(7244221)")
	assert.Contains(t, lines[1], "37313")
	assert.Contains(t, lines[4], "sjt")
	assert.Contains(t, lines[4], "22584")
}

func TestShuffleCmd(t *testing.T) {
	const key = "000102030405060708090a0b0c0d0e0f"

	shuffled, err := run(t, "shuffle", "--key", key, "--tweak", "seats", "ABCDEFGH")
	require.NoError(t, err)
	shuffled = strings.TrimSpace(shuffled)
	assert.Len(t, shuffled, 8)

	again, err := run(t, "shuffle", "--key", key, "--tweak", "seats", "ABCDEFGH")
	require.NoError(t, err)
	assert.Equal(t, shuffled, strings.TrimSpace(again))

	restored, err := run(t, "shuffle", "--key", key, "--tweak", "seats", "--reverse", shuffled)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGH\n", restored)

	_, err = run(t, "shuffle", "ABCDEFGH")
	assert.Error(t, err)

	_, err = run(t, "shuffle", "--key", "abcd", "ABCDEFGH")
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	path := writeConfig(t, "scheme = \"dec\"\ndigits = 8\n")

	out, err := run(t, "--config", path, "unrank", "37895")
	require.NoError(t, err)
	assert.Equal(t, "83674521\n", out)

	// Flags win over the file.
	out, err = run(t, "--config", path, "unrank", "-s", "lex", "37313")
	require.NoError(t, err)
	assert.Equal(t, "83674521\n", out)
}

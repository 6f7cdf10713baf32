package b32

import (
	"strings"
	"testing"

	"github.com/kitimark/b32/pkg/base32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEncodeCmd(t *testing.T) {
	testcases := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{{
		name:     "args",
		args:     []string{"encode", "foobar"},
		expected: "MZXW6YTBOI======\n",
	}, {
		name:     "args joined with spaces",
		args:     []string{"encode", "foo", "bar"},
		expected: base32.Encode("foo bar", false) + "\n",
	}, {
		name:     "stdin",
		stdin:    "f",
		args:     []string{"encode"},
		expected: "MY======\n",
	}, {
		name:     "empty stdin",
		args:     []string{"encode"},
		expected: "\n",
	}, {
		name:     "hex",
		args:     []string{"encode", "--hex", "foobar"},
		expected: "CPNMUOJ1E8======\n",
	}, {
		name:     "alias",
		args:     []string{"enc", "-x", "f"},
		expected: "CO======\n",
	}}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := trunMainCommand(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestDecodeCmd(t *testing.T) {
	testcases := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{{
		name:     "args",
		args:     []string{"decode", "MZXW6YTBOI======"},
		expected: "foobar\n",
	}, {
		name:     "lower case",
		args:     []string{"decode", "mzxw6ytboi======"},
		expected: "foobar\n",
	}, {
		name:     "stdin with trailing newline",
		stdin:    "MZXW6YTBOI======\n",
		args:     []string{"decode"},
		expected: "foobar\n",
	}, {
		name:     "split over args",
		args:     []string{"decode", "MZXW6", "YTBOI======"},
		expected: "foobar\n",
	}, {
		name:     "hex",
		args:     []string{"dec", "--hex", "CPNMUOJ1E8======"},
		expected: "foobar\n",
	}}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := trunMainCommand(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestDecodeCmdErrors(t *testing.T) {
	_, err := trunMainCommand(t, "", "decode", "MZXW6YTB0I======")
	assert.ErrorIs(t, err, base32.ErrInvalidCharacter)
	assert.EqualError(t, err, "cannot decode base32 input: invalid base32 character: 0")

	_, err = trunMainCommand(t, "", "decode", "--hex", "VS======")
	assert.ErrorIs(t, err, base32.ErrInvalidUTF8)
	assert.EqualError(t, err, "cannot decode base32hex input: invalid utf-8 in decoded data")
}

func TestJSONOutput(t *testing.T) {
	out, err := trunMainCommand(t, "", "encode", "--json", "f")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))

	var r result
	err = bson.UnmarshalExtJSON([]byte(strings.TrimSpace(out)), false, &r)
	require.NoError(t, err)
	assert.Equal(t, result{Alphabet: "base32", Input: "f", Output: "MY======"}, r)

	out, err = trunMainCommand(t, "", "decode", "-j", "-x", "CO======")
	require.NoError(t, err)
	err = bson.UnmarshalExtJSON([]byte(strings.TrimSpace(out)), false, &r)
	require.NoError(t, err)
	assert.Equal(t, result{Alphabet: "base32hex", Input: "CO======", Output: "f"}, r)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("B32_HEX", "true")

	out, err := trunMainCommand(t, "", "encode", "f")
	require.NoError(t, err)
	assert.Equal(t, "CO======\n", out)

	// flags take precedence over the environment
	out, err = trunMainCommand(t, "", "encode", "--hex=false", "f")
	require.NoError(t, err)
	assert.Equal(t, "MY======\n", out)
}

func TestDebugFlag(t *testing.T) {
	out, err := trunMainCommand(t, "", "encode", "--debug", "f")
	require.NoError(t, err)
	assert.Equal(t, "MY======\n", out)
}

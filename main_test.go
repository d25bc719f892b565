package main

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takakv/algebra/field"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

const catalogText = `
[group.klein]
table = [[0,1,2,3],[1,0,3,2],[2,3,0,1],[3,2,1,0]]

[product.s2xs3]
components = ["sn:2", "sn:3"]
separator = ";"
`

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestCalc(t *testing.T) {
	bnMinusOne := new(big.Int).Sub(field.BN254().Modulus(), big.NewInt(1))

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"zn:8", "add", "5", "7"}, "4"},
		{[]string{"zn:8", "sub", "5", "7"}, "6"},
		{[]string{"zn:8", "pow", "3", "-1"}, "3"},
		{[]string{"zn:8", "one"}, "1"},
		{[]string{"zn:1", "one"}, "0"},
		{[]string{"fp:7", "inv", "3"}, "5"},
		{[]string{"fp:7", "div", "1", "3"}, "5"},
		{[]string{"z", "pow", "2", "10"}, "1024"},
		{[]string{"z", "times", "-7", "6"}, "-42"},
		{[]string{"z", "zero"}, "0"},
		{[]string{"q", "div", "1/2", "3/4"}, "2/3"},
		{[]string{"q", "neg", "-4/6"}, "2/3"},
		{[]string{"sn:3", "mul", "3 1 0 2", "3 2 1 0"}, "3 2 0 1"},
		{[]string{"sn:3", "inv", "3 1 2 0"}, "3 2 0 1"},
		{[]string{"sn:3", "eq", "3 0 1 2", "3 0 1 2"}, "true"},
		{[]string{"strings:ab", "mul", "ab", "ba"}, "abba"},
		{[]string{"strings:ab", "pow", "ab", "3"}, "ababab"},
		{[]string{"modp3072", "one"}, "1"},
		{[]string{"bn254", "neg", "1"}, bnMinusOne.String()},
		{[]string{"bls12-377", "mul", "6", "7"}, "42"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, "", append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCalcGroups(t *testing.T) {
	for _, name := range []string{"p256", "p384", "ristretto255", "secp256k1", "ed25519"} {
		t.Run(name, func(t *testing.T) {
			one, err := run(t, "", "calc", name, "one")
			require.NoError(t, err)
			one = strings.TrimSpace(one)

			out, err := run(t, "", "calc", name, "pow", one, "5")
			require.NoError(t, err)
			assert.Equal(t, one+"\n", out)
		})
	}
}

func TestCalcErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown structure": {"calc", "nope", "one"},
		"unknown operation": {"calc", "zn:8", "frob", "1"},
		"missing argument":  {"calc", "zn:8", "add", "1"},
		"extra argument":    {"calc", "zn:8", "neg", "1", "2"},
		"not a residue":     {"calc", "zn:8", "eq", "5", "13"},
		"trailing text":     {"calc", "zn:8", "neg", "1 2"},
		"bad count":         {"calc", "z", "pow", "2", "x"},
		"semigroup inverse": {"calc", "strings:ab", "inv", "ab"},
		"non-unit":          {"calc", "zn:8", "inv", "4"},
		"zero inverse":      {"calc", "q", "inv", "0"},
		"too few":           {"calc", "z"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "", args...)
			assert.Error(t, err)
		})
	}
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "", "calc", "--json", "zn:8", "add", "5", "7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"structure":"zn:8","op":"add","args":["5","7"],"result":"4"}`, out)

	out, err = run(t, "", "calc", "--json", "z", "one")
	require.NoError(t, err)
	assert.JSONEq(t, `{"structure":"z","op":"one","args":[],"result":"1"}`, out)
}

func TestCalcCatalog(t *testing.T) {
	path := writeFile(t, "structures.toml", catalogText)

	out, err := run(t, "", "-c", path, "calc", "klein", "mul", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, "", "-c", path, "calc", "s2xs3", "mul", "2 1 0;3 1 2 0", "2 0 1;3 1 0 2")
	require.NoError(t, err)
	assert.Equal(t, "2 1 0;3 2 1 0\n", out)

	_, err = run(t, "", "-c", filepath.Join(t.TempDir(), "missing.toml"), "calc", "z", "one")
	assert.Error(t, err)
}

const kleinTable = `# Klein four-group
0 1 2 3
1 0 3 2

2 3 0 1
3 2 1 0
`

func TestTable(t *testing.T) {
	out, err := run(t, "", "table", writeFile(t, "klein.txt", kleinTable))
	require.NoError(t, err)
	assert.Contains(t, out, "order: 4\n")
	assert.Contains(t, out, "abelian: yes\n")
	for _, inv := range []string{"0 -> 0", "1 -> 1", "2 -> 2", "3 -> 3"} {
		assert.Contains(t, out, inv)
	}

	out, err = run(t, "0 1 2\n1 2 0\n2 0 1\n", "table", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "order: 3\n")
	assert.Contains(t, out, "1 -> 2")
	assert.Contains(t, out, "2 -> 1")

	out, err = run(t, "0 1 2\n1 0 2\n2 2 0\n", "table", "-")
	assert.Error(t, err)
	assert.Contains(t, out, "not a group:")

	_, err = run(t, "0 x\n", "table", "-")
	assert.Error(t, err)

	_, err = run(t, "", "table", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestStructures(t *testing.T) {
	out, err := run(t, "", "structures")
	require.NoError(t, err)
	assert.Contains(t, out, "zn:ARG")
	assert.Contains(t, out, "secp256k1")
	assert.NotContains(t, out, "catalog:")

	out, err = run(t, "", "--config", writeFile(t, "structures.toml", catalogText), "structures")
	require.NoError(t, err)
	assert.Contains(t, out, "klein (abelian group)")
	assert.Contains(t, out, "s2xs3 (group)")
}

func TestVerbose(t *testing.T) {
	level := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(level) })

	_, err := run(t, "", "-v", "calc", "z", "one")
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

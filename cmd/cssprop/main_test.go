package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParse_JSON(t *testing.T) {
	stdout, _, err := run(t, "parse", "--format", "json", "foo <length>#", "*", "<transform-list>")
	require.NoError(t, err)

	var out []DescriptorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 3)

	assert.Equal(t, []ComponentOutput{
		{Kind: "ident", Name: "foo"},
		{Kind: "data-type", Name: "length", Multiplier: "#"},
	}, out[0].Components)
	assert.True(t, out[1].Universal)
	assert.Equal(t, []ComponentOutput{
		{Kind: "data-type", Name: "transform-list", Premultiplied: true},
	}, out[2].Components)
}

func TestParse_Invalid(t *testing.T) {
	stdout, _, err := run(t, "parse", "-f", "yaml", "<length>", "|foo")
	assert.ErrorIs(t, err, errFailed)

	var out []DescriptorOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 2)
	assert.Nil(t, out[0].Error)
	require.NotNil(t, out[1].Error)
	assert.Equal(t, `unexpected "|"`, out[1].Error.Kind)
	assert.Equal(t, 0, out[1].Error.Offset)
}

func TestParse_Text(t *testing.T) {
	stdout, _, err := run(t, "parse", "<color>+ | auto")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"<color>+ | auto"`)
	assert.Regexp(t, `data-type\s+color\s+\+`, stdout)
	assert.Regexp(t, `ident\s+auto`, stdout)

	stdout, _, err = run(t, "parse", "<nope>")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, stdout, "unknown data type name <nope> at offset 1")
}

func TestExpand(t *testing.T) {
	stdout, _, err := run(t, "expand", "-f", "json", "<transform-list> | none")
	require.NoError(t, err)

	var out DescriptorOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, []ComponentOutput{
		{Kind: "data-type", Name: "transform-function", Multiplier: "+"},
		{Kind: "ident", Name: "none"},
	}, out.Components)

	_, _, err = run(t, "expand", "inherit")
	assert.ErrorIs(t, err, errFailed)
}

func TestTypes(t *testing.T) {
	stdout, _, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<length>")
	assert.Regexp(t, `<transform-list>\s+<transform-function>\+`, stdout)
}

func TestVocab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
types:
  - name: step
  - name: steps
    expands: {name: step, multiplier: "#"}
`), 0o600))

	stdout, stderr, err := run(t, "--vocab", path, "-v", "types", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded vocabulary")

	var out []TypeOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, []TypeOutput{
		{Name: "step"},
		{Name: "steps", Expands: &ComponentOutput{Kind: "data-type", Name: "step", Multiplier: "#"}},
	}, out)

	_, _, err = run(t, "--vocab", path, "parse", "<length>")
	assert.ErrorIs(t, err, errFailed)

	_, _, err = run(t, "--vocab", filepath.Join(t.TempDir(), "missing.yaml"), "types")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := run(t, "parse", "-f", "xml", "foo")
	assert.EqualError(t, err, `unknown format "xml"`)
}

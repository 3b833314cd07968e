package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/cli"
	"github.com/testsel/testsel/cli/commands/check"
	"github.com/testsel/testsel/cli/commands/common"
	"github.com/testsel/testsel/internal/selection"
	"github.com/testsel/testsel/options"
)

const manifest = `{
  "assemblies": [
    {
      "name": "Acme.Tests",
      "tests": [
        {"namespace": "Acme.Math", "class": "AddTests", "method": "AddsTwo", "traits": {"Category": ["Unit"]}},
        {"namespace": "Acme.Math", "class": "AddTests", "method": "Overflows", "traits": {"Category": ["Slow"]}},
        {"namespace": "Acme.Text", "class": "SplitTests", "method": "SplitsOnComma"}
      ]
    },
    {
      "name": "Acme.Integration",
      "tests": [
        {"namespace": "Acme.Db", "class": "RepoTests", "method": "Saves", "traits": {"Category": ["Integration"]}}
      ]
    }
  ]
}`

type testEnv struct {
	dir      string
	manifest string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o700))

	path := filepath.Join(dir, "tests.json")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	return &testEnv{dir: dir, manifest: path}
}

func (env *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	opts := options.NewTestselOptionsWithWriters(stdout, stderr)

	app := cli.NewApp(opts)
	err := app.RunContext(t.Context(), append([]string{cli.AppName, "--working-dir", env.dir}, args...))

	return stdout.String(), stderr.String(), err
}

func TestListText(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no filter",
			args:     []string{"list", "--tests", env.manifest},
			expected: "Acme.Tests Acme.Math.AddTests.AddsTwo\nAcme.Tests Acme.Math.AddTests.Overflows\nAcme.Tests Acme.Text.SplitTests.SplitsOnComma\nAcme.Integration Acme.Db.RepoTests.Saves\n",
		},
		{
			name:     "trait",
			args:     []string{"ls", "-t", env.manifest, "-f", "/[category!=slow]"},
			expected: "Acme.Tests Acme.Math.AddTests.AddsTwo\nAcme.Tests Acme.Text.SplitTests.SplitsOnComma\nAcme.Integration Acme.Db.RepoTests.Saves\n",
		},
		{
			name:     "several filters",
			args:     []string{"list", "-t", env.manifest, "-f", "/Acme.Tests", "-f", "/*/*/(AddTests)|(RepoTests)/!(Overflows)"},
			expected: "Acme.Tests Acme.Math.AddTests.AddsTwo\n",
		},
		{
			name:     "nothing selected",
			args:     []string{"list", "-t", env.manifest, "-f", "/*/*/NoSuchClass"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := env.run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stdout)
		})
	}
}

func TestListJSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	stdout, _, err := env.run(t, "list", "--tests", env.manifest, "--format", "json", "--filter", "/*/Acme.Math")
	require.NoError(t, err)

	var result selection.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Matched)
	assert.Equal(t, "namespace:Acme.Math", result.Filter)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Assemblies, 2)
	assert.Equal(t, &selection.AssemblyResult{Name: "Acme.Tests", Total: 3, Matched: 2}, result.Assemblies[0])
	assert.Equal(t, &selection.AssemblyResult{Name: "Acme.Integration", Total: 1, Matched: 0}, result.Assemblies[1])
}

func TestListUsesConfigFile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	require.NoError(t, os.WriteFile(filepath.Join(env.dir, ".testsel.hcl"), []byte(`
filters = ["/Acme.Integration"]
tests   = ["`+filepath.ToSlash(env.manifest)+`"]
`), 0o600))

	stdout, _, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Acme.Integration Acme.Db.RepoTests.Saves\n", stdout)

	stdout, _, err = env.run(t, "list", "--filter", "/*/Acme.Text")
	require.NoError(t, err)
	assert.Equal(t, "Acme.Tests Acme.Text.SplitTests.SplitsOnComma\n", stdout)
}

func TestListErrors(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, _, err := env.run(t, "list")

	var noManifests *common.NoManifestsError
	require.ErrorAs(t, err, &noManifests)

	_, _, err = env.run(t, "list", "--tests", env.manifest, "--format", "xml")

	var formatErr *options.UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)

	_, _, err = env.run(t, "list", "--tests", env.manifest, "--filter", "asm")
	require.ErrorContains(t, err, "Query filter 'asm' is not valid: query must begin with '/'")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--no-color", "check", "/asm1/(a)|(b)")
	require.NoError(t, err)
	assert.Equal(t, "'/asm1/(a)|(b)' is valid: (assembly:asm1)&((namespace:a)|(namespace:b))\n", stdout)

	stdout, _, err = env.run(t, "--no-color", "check", "/asm1", "/(foo)|(bar)&(baz)")

	var invalidErr *check.InvalidQueriesError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, 1, invalidErr.Invalid)
	assert.Equal(t, 2, invalidErr.Total)

	assert.Contains(t, stdout, " --> --filter[2] '/(foo)|(bar)&(baz)'")
	assert.Contains(t, stdout, "                 ^ logical expressions cannot mix '|' and '&' without grouping parentheses")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := newTestEnv(t).run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "testsel version dev\n", stdout)
}

func TestListSortAlpha(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	stdout, _, err := env.run(t, "list", "--tests", env.manifest, "--sort", "alpha")
	require.NoError(t, err)
	assert.Equal(t, "Acme.Integration Acme.Db.RepoTests.Saves\nAcme.Tests Acme.Math.AddTests.AddsTwo\nAcme.Tests Acme.Math.AddTests.Overflows\nAcme.Tests Acme.Text.SplitTests.SplitsOnComma\n", stdout)

	_, _, err = env.run(t, "list", "--tests", env.manifest, "--sort", "random")

	var sortErr *options.UnsupportedSortError
	require.ErrorAs(t, err, &sortErr)
}

func TestListWarnsOnTraitFilterWithoutTraits(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	plain := filepath.Join(env.dir, "plain.json")
	require.NoError(t, os.WriteFile(plain, []byte(`{"assemblies": [{"name": "a", "tests": [{"class": "C", "method": "M"}]}]}`), 0o600))

	_, stderr, err := env.run(t, "--no-color", "list", "--tests", plain, "--filter", "/[Category=Unit]")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no loaded test declares any traits")

	_, stderr, err = env.run(t, "--no-color", "list", "--tests", env.manifest, "--filter", "/[Category=Unit]")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "no loaded test declares any traits")
}

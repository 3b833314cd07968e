package testcase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/internal/testcase"
)

const jsonManifest = `{
  "assemblies": [
    {
      "name": "Acme.Tests",
      "tests": [
        {"namespace": "Acme.Math", "class": "AddTests", "method": "AddsTwo", "traits": {"Category": ["Unit"]}},
        {"namespace": "Acme.Math", "class": "AddTests", "method": "Overflows"}
      ]
    }
  ]
}`

const yamlManifest = `assemblies:
  - name: Acme.Integration
    tests:
      - namespace: Acme.Db
        class: RepoTests
        method: Saves
        display_name: "Saves a record"
        traits:
          Category: [Integration, Slow]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	manifest, err := testcase.LoadManifest(writeFile(t, "tests.json", jsonManifest))
	require.NoError(t, err)

	cases := manifest.TestCases()
	require.Len(t, cases, 2)
	assert.Equal(t, "Acme.Tests", cases[0].Assembly)
	assert.Equal(t, "AddsTwo", cases[0].TestMethodName())
	assert.True(t, cases[0].TraitValues.Has("category", "unit"))
	assert.Empty(t, cases[1].Traits())

	manifest, err = testcase.LoadManifest(writeFile(t, "tests.yml", yamlManifest))
	require.NoError(t, err)

	cases = manifest.TestCases()
	require.Len(t, cases, 1)
	assert.Equal(t, "Acme.Integration", cases[0].Assembly)
	assert.Equal(t, "Saves a record", cases[0].String())
	assert.Equal(t, []string{"Integration", "Slow"}, cases[0].TraitValues.Lookup("Category"))
}

func TestLoadManifestErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := testcase.LoadManifest(filepath.Join(t.TempDir(), "missing.json"))

		var readErr *testcase.FileReadError
		require.ErrorAs(t, err, &readErr)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := testcase.LoadManifest(writeFile(t, "tests.json", `{"suites": []}`))

		var decodeErr *testcase.DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := testcase.LoadManifest(writeFile(t, "tests.yaml", "assemblies: [unclosed"))

		var decodeErr *testcase.DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("null entries", func(t *testing.T) {
		t.Parallel()

		for name, content := range map[string]string{
			"tests.json": `{"assemblies":[{"name":"a","tests":[null]}]}`,
			"nulls.json": `{"assemblies":[null]}`,
			"tests.yaml": "assemblies:\n  - name: a\n    tests:\n      - null\n",
		} {
			_, err := testcase.LoadManifest(writeFile(t, name, content))

			var decodeErr *testcase.DecodeError
			require.ErrorAs(t, err, &decodeErr, name)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		t.Parallel()

		_, err := testcase.LoadManifest(writeFile(t, "tests.xml", "<tests/>"))

		var formatErr *testcase.UnsupportedFormatError
		require.ErrorAs(t, err, &formatErr)
	})
}

func TestLoadManifestsKeepsOrder(t *testing.T) {
	t.Parallel()

	paths := []string{
		writeFile(t, "b.yaml", yamlManifest),
		writeFile(t, "a.json", jsonManifest),
	}

	cases, err := testcase.LoadManifests(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	assert.Equal(t, []string{"Acme.Integration", "Acme.Tests"}, cases.Assemblies())

	_, err = testcase.LoadManifests(context.Background(), append(paths, filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
}

func TestManifestTestCasesSkipsNilEntries(t *testing.T) {
	t.Parallel()

	manifest := &testcase.Manifest{
		Assemblies: []*testcase.AssemblyManifest{
			nil,
			{Name: "a", Tests: []*testcase.TestCase{nil, {Class: "C", Method: "M"}}},
		},
	}

	cases := manifest.TestCases()
	require.Len(t, cases, 1)
	assert.Equal(t, "a", cases[0].Assembly)
}

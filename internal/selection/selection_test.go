package selection_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/internal/queryfilter"
	"github.com/testsel/testsel/internal/selection"
	"github.com/testsel/testsel/internal/testcase"
	"github.com/testsel/testsel/pkg/log"
)

func testLogger() log.Logger {
	return log.New(log.WithOutput(io.Discard), log.WithLevel(log.DebugLevel))
}

func generateCases(assemblies ...string) testcase.TestCases {
	var cases testcase.TestCases

	for _, asm := range assemblies {
		for i := range 600 {
			tc := &testcase.TestCase{
				Assembly:  asm,
				Namespace: "Acme." + asm,
				Class:     fmt.Sprintf("Class%d", i%10),
				Method:    fmt.Sprintf("Method%d", i),
			}

			if i%3 == 0 {
				tc.TraitValues = testcase.Traits{"Category": {"Slow"}}
			}

			cases = append(cases, tc)
		}
	}

	return cases
}

func TestSelect(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		query    string
		expected map[string]int
	}{
		{
			name:     "everything",
			query:    "/",
			expected: map[string]int{"asm1": 600, "asm2": 600},
		},
		{
			name:     "assembly",
			query:    "/asm2",
			expected: map[string]int{"asm1": 0, "asm2": 600},
		},
		{
			name:     "class and trait",
			query:    "/*/*/Class0/[Category!=slow]",
			expected: map[string]int{"asm1": 40, "asm2": 40},
		},
		{
			name:     "composite",
			query:    "/(asm1)|(asm2)/*/*/(Method1)|(Method2*)",
			expected: map[string]int{"asm1": 112, "asm2": 112},
		},
	}

	cases := generateCases("asm1", "asm2")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			filter, err := queryfilter.Parse(tc.query)
			require.NoError(t, err)

			result, err := selection.Select(t.Context(), testLogger(), filter, cases, 4)
			require.NoError(t, err)

			assert.Equal(t, len(cases), result.Total)
			require.Len(t, result.Assemblies, 2)

			matched := 0

			for _, asm := range result.Assemblies {
				assert.Equal(t, 600, asm.Total)
				assert.Equal(t, tc.expected[asm.Name], asm.Matched, asm.Name)

				matched += asm.Matched
			}

			assert.Equal(t, matched, result.Matched)
			assert.Len(t, result.Selected, matched)

			_, err = uuid.Parse(result.RunID)
			require.NoError(t, err)
		})
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	t.Parallel()

	cases := generateCases("asm1")

	result, err := selection.Select(t.Context(), testLogger(), queryfilter.Pass{}, cases, 8)
	require.NoError(t, err)
	assert.Equal(t, cases, result.Selected)
}

func TestSelectCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := selection.Select(ctx, testLogger(), queryfilter.Pass{}, generateCases("asm1"), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSelectEmpty(t *testing.T) {
	t.Parallel()

	result, err := selection.Select(t.Context(), testLogger(), queryfilter.Pass{}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Selected)
	assert.NotNil(t, result.Selected)
}

func TestSorted(t *testing.T) {
	t.Parallel()

	result := &selection.Result{
		Selected: testcase.TestCases{
			{Assembly: "b", Class: "A", Method: "m"},
			{Assembly: "a", Class: "B", Method: "m"},
			{Assembly: "a", Class: "A", Method: "m"},
		},
	}

	sorted := result.Sorted()
	assert.Equal(t, "a", sorted[0].Assembly)
	assert.Equal(t, "A", sorted[0].Class)
	assert.Equal(t, "B", sorted[1].Class)
	assert.Equal(t, "b", sorted[2].Assembly)
	assert.Equal(t, "b", result.Selected[0].Assembly)
}

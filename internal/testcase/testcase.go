// Package testcase provides the metadata of discovered tests and the manifests they are loaded from.
package testcase

import (
	"slices"
	"strings"
)

// Traits is a multimap of trait names to values. Lookups ignore case.
type Traits map[string][]string

// Add appends value to the values of name, reusing an existing name that differs only in case.
func (traits Traits) Add(name, value string) {
	for key, values := range traits {
		if strings.EqualFold(key, name) {
			if !slices.ContainsFunc(values, func(v string) bool { return strings.EqualFold(v, value) }) {
				traits[key] = append(values, value)
			}

			return
		}
	}

	traits[name] = []string{value}
}

// Lookup returns the values of the trait name.
func (traits Traits) Lookup(name string) []string {
	if values, ok := traits[name]; ok {
		return values
	}

	for key, values := range traits {
		if strings.EqualFold(key, name) {
			return values
		}
	}

	return nil
}

// Has reports whether the trait name has the given value.
func (traits Traits) Has(name, value string) bool {
	return slices.ContainsFunc(traits.Lookup(name), func(v string) bool {
		return strings.EqualFold(v, value)
	})
}

// TestCase is a discovered test.
type TestCase struct {
	TraitValues Traits `json:"traits,omitempty" yaml:"traits,omitempty"`
	Assembly    string `json:"assembly,omitempty" yaml:"assembly,omitempty"`
	Namespace   string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Class       string `json:"class" yaml:"class"`
	Method      string `json:"method" yaml:"method"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// TestCases is a list of test cases.
type TestCases []*TestCase

func (tc *TestCase) TestClassNamespace() string  { return tc.Namespace }
func (tc *TestCase) TestClassSimpleName() string { return tc.Class }
func (tc *TestCase) TestMethodName() string      { return tc.Method }

// Traits returns the trait multimap, never nil.
func (tc *TestCase) Traits() map[string][]string {
	if tc.TraitValues == nil {
		return map[string][]string{}
	}

	return tc.TraitValues
}

// FullyQualifiedName returns `namespace.class.method`, omitting an empty namespace.
func (tc *TestCase) FullyQualifiedName() string {
	parts := make([]string, 0, 3)

	if tc.Namespace != "" {
		parts = append(parts, tc.Namespace)
	}

	return strings.Join(append(parts, tc.Class, tc.Method), ".")
}

// String returns the display name if set, otherwise the fully qualified name.
func (tc *TestCase) String() string {
	if tc.DisplayName != "" {
		return tc.DisplayName
	}

	return tc.FullyQualifiedName()
}

// Assemblies returns the distinct assembly names in order of first appearance.
func (cases TestCases) Assemblies() []string {
	var names []string

	for _, tc := range cases {
		if !slices.Contains(names, tc.Assembly) {
			names = append(names, tc.Assembly)
		}
	}

	return names
}

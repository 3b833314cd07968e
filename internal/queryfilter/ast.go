package queryfilter

import (
	"strings"
)

// TestCase is the read-only view of a discovered test that filters are evaluated against.
type TestCase interface {
	// TestClassNamespace returns the namespace of the test class, or an empty string.
	TestClassNamespace() string
	// TestClassSimpleName returns the class name without its namespace.
	TestClassSimpleName() string
	// TestMethodName returns the simple name of the test method.
	TestMethodName() string
	// Traits returns the trait multimap of the test.
	Traits() map[string][]string
}

// Filter is a compiled query node.
type Filter interface {
	// Filter reports whether the test case in the given assembly is selected.
	Filter(assemblyName string, testCase TestCase) bool
	// String renders the node back into query-like text.
	String() string

	filterNode()
}

// Pass matches every test case.
type Pass struct{}

func (Pass) Filter(string, TestCase) bool { return true }
func (Pass) String() string              { return "*" }
func (Pass) filterNode()                 {}

// Assembly matches the assembly name.
type Assembly struct {
	Pattern *Pattern
}

func (f *Assembly) Filter(assemblyName string, _ TestCase) bool {
	return f.Pattern.Match(assemblyName)
}

func (f *Assembly) String() string { return "assembly:" + f.Pattern.String() }
func (f *Assembly) filterNode()    {}

// Namespace matches the namespace of the test class.
type Namespace struct {
	Pattern *Pattern
}

func (f *Namespace) Filter(_ string, testCase TestCase) bool {
	return f.Pattern.Match(testCase.TestClassNamespace())
}

func (f *Namespace) String() string { return "namespace:" + f.Pattern.String() }
func (f *Namespace) filterNode()    {}

// ClassSimpleName matches the test class name without its namespace.
type ClassSimpleName struct {
	Pattern *Pattern
}

func (f *ClassSimpleName) Filter(_ string, testCase TestCase) bool {
	return f.Pattern.Match(testCase.TestClassSimpleName())
}

func (f *ClassSimpleName) String() string { return "class:" + f.Pattern.String() }
func (f *ClassSimpleName) filterNode()    {}

// MethodSimpleName matches the test method name.
type MethodSimpleName struct {
	Pattern *Pattern
}

func (f *MethodSimpleName) Filter(_ string, testCase TestCase) bool {
	return f.Pattern.Match(testCase.TestMethodName())
}

func (f *MethodSimpleName) String() string { return "method:" + f.Pattern.String() }
func (f *MethodSimpleName) filterNode()    {}

// Trait matches if the test has at least one trait whose name and value match the patterns.
type Trait struct {
	Name  *Pattern
	Value *Pattern
}

func (f *Trait) Filter(_ string, testCase TestCase) bool {
	for name, values := range testCase.Traits() {
		if !f.Name.Match(name) {
			continue
		}

		for _, value := range values {
			if f.Value.Match(value) {
				return true
			}
		}
	}

	return false
}

func (f *Trait) String() string { return "[" + f.Name.String() + "=" + f.Value.String() + "]" }
func (f *Trait) filterNode()    {}

// LogicalNot inverts its child.
type LogicalNot struct {
	Inner Filter
}

func (f *LogicalNot) Filter(assemblyName string, testCase TestCase) bool {
	return !f.Inner.Filter(assemblyName, testCase)
}

func (f *LogicalNot) String() string { return "!" + f.Inner.String() }
func (f *LogicalNot) filterNode()    {}

// LogicalAnd matches when every child matches. Evaluation stops at the first miss.
type LogicalAnd struct {
	Filters []Filter
}

func (f *LogicalAnd) Filter(assemblyName string, testCase TestCase) bool {
	for _, child := range f.Filters {
		if !child.Filter(assemblyName, testCase) {
			return false
		}
	}

	return true
}

func (f *LogicalAnd) String() string { return joinFilters(f.Filters, "&") }
func (f *LogicalAnd) filterNode()    {}

// LogicalOr matches when any child matches. Evaluation stops at the first hit.
type LogicalOr struct {
	Filters []Filter
}

func (f *LogicalOr) Filter(assemblyName string, testCase TestCase) bool {
	for _, child := range f.Filters {
		if child.Filter(assemblyName, testCase) {
			return true
		}
	}

	return false
}

func (f *LogicalOr) String() string { return joinFilters(f.Filters, "|") }
func (f *LogicalOr) filterNode()    {}

func joinFilters(filters []Filter, op string) string {
	parts := make([]string, len(filters))
	for i, child := range filters {
		parts[i] = "(" + child.String() + ")"
	}

	return strings.Join(parts, op)
}

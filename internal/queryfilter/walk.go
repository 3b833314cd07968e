package queryfilter

// Walk traverses the filter tree depth-first, calling fn for each node.
// The traversal continues to child nodes only if fn returns true.
func Walk(filter Filter, fn func(Filter) bool) {
	if filter == nil {
		return
	}

	if !fn(filter) {
		return
	}

	switch node := filter.(type) {
	case *LogicalNot:
		Walk(node.Inner, fn)
	case *LogicalAnd:
		for _, child := range node.Filters {
			Walk(child, fn)
		}
	case *LogicalOr:
		for _, child := range node.Filters {
			Walk(child, fn)
		}
	}
}

// UsesTraits returns true if any node of the tree matches on traits.
func UsesTraits(filter Filter) bool {
	found := false

	Walk(filter, func(node Filter) bool {
		if _, ok := node.(*Trait); ok {
			found = true
		}

		return !found
	})

	return found
}

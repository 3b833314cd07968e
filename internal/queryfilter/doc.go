// Package queryfilter compiles test selection queries into predicates that decide, per test case,
// whether the test is part of a run.
//
// # Query Syntax
//
// A query starts with '/' and is made of up to four positional segments:
//
//	/assembly/namespace/class/method
//
// Missing trailing segments, and segments that are exactly '*', match everything:
//
//	/                       # every test
//	/*/*/MyClass            # tests in any class named MyClass
//	/MyAssembly//*/Test*    # test methods starting with "Test" in MyAssembly
//
// ## Wildcards
//
// Each segment is a pattern that may start and/or end with '*'. Matching is case-insensitive.
//
//	name                    # exact match
//	nam*                    # prefix match
//	*ame                    # suffix match
//	*am*                    # substring match
//
// A '*' anywhere else, or a pattern made only of wildcards such as '**', is rejected.
//
// ## Negation
//
// A segment prefixed with '!' inverts the match. Negating '*' is rejected because it would exclude all tests.
//
//	/!Legacy*               # tests not in assemblies starting with "Legacy"
//
// ## Traits
//
// A segment enclosed in '[...]' matches test traits instead of a positional name. Traits are not positional,
// so a trait block may appear in any slot:
//
//	/[Category=Unit]        # tests with trait Category=Unit
//	/[Category!=Slow]       # tests without trait Category=Slow
//	/asm/[Owner=*team*]     # trait name and value accept the same wildcards as segments
//
// ## Logical Expressions
//
// Operands enclosed in parentheses can be combined with '|' (or) and '&' (and). One nesting level may use only
// one operator kind; extra parentheses group mixed operators:
//
//	/(asm1)|(asm2)
//	/((asm1)|(asm2))&(!asm5)
//	/[(Category=Unit)|(Category=Integration)]
//
// Negation of a group is expressed inside the parentheses, '(!name)', never as '!(...)'.
//
// ## Escaping
//
// Reserved characters are written as hexadecimal character entities, for example '&#x28;' for '(' and '&#x2f;'
// for '/'. Entities are decoded after the query structure has been parsed, so an escaped delimiter is always
// literal text.
//
// # Evaluation
//
// Parse returns a Filter, an immutable tree that is safe for concurrent use:
//
//	f, err := queryfilter.Parse("/MyAssembly/*/*Tests")
//	if err != nil {
//		return err
//	}
//
//	if f.Filter("MyAssembly", testCase) {
//		// include the test
//	}
//
// Errors are reported as *InvalidQueryError values carrying the position of the problem,
// which FormatDiagnostic renders with a caret under the offending character.
package queryfilter

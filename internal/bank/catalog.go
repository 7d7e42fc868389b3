package bank

import "github.com/finsift/smsparser/internal/parse"

// Catalog builds the dispatch registry with every supported institution, in
// priority order. Parsers with specific sender matchers come first; anything
// with a loose contains-style predicate goes last so it cannot shadow them.
func Catalog() *parse.Registry {
	return parse.NewRegistry(
		NewHDFC(),
		NewSBI(),
		NewFAB(),
	)
}

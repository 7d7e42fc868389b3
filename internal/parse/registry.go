package parse

// Registry is an ordered collection of institution parsers. Resolution walks
// the registration order and the first parser whose sender predicate accepts
// wins, so specific matchers must be registered before loose ones.
//
// A Registry is built once at startup and read-only afterwards.
type Registry struct {
	parsers []*Parser
}

// NewRegistry builds a registry from parsers in priority order.
func NewRegistry(parsers ...*Parser) *Registry {
	return &Registry{parsers: parsers}
}

// Register appends a parser at the lowest priority.
func (r *Registry) Register(p *Parser) {
	r.parsers = append(r.parsers, p)
}

// Resolve returns the first parser accepting the sender.
func (r *Registry) Resolve(sender string) (*Parser, bool) {
	for _, p := range r.parsers {
		if p.Accepts(sender) {
			return p, true
		}
	}
	return nil, false
}

// Parsers returns the registered parsers in priority order.
func (r *Registry) Parsers() []*Parser {
	out := make([]*Parser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// Len returns the number of registered parsers.
func (r *Registry) Len() int { return len(r.parsers) }

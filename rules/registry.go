package rules

// Registry is an immutable, ordered set of active rules. Scan results list
// findings in registry order, so the order here is part of the output
// contract. Construct one at process start and pass it to the scanner;
// nothing in this package holds global state.
type Registry struct {
	rules []Rule
}

// NewRegistry builds a registry from the given rules, preserving order.
func NewRegistry(rules ...Rule) *Registry {
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	return &Registry{rules: rs}
}

// DefaultRegistry returns the registry of all shipped rules.
func DefaultRegistry() *Registry {
	return NewRegistry(NewRule303(), NewRule304())
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []Rule {
	rs := make([]Rule, len(r.rules))
	copy(rs, r.rules)
	return rs
}

// IDs returns the identifiers of all registered rules, in order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		ids = append(ids, rule.ID())
	}
	return ids
}

// Codes returns the numeric codes of all registered rules, in order.
// The health endpoint reports these.
func (r *Registry) Codes() []int {
	codes := make([]int, 0, len(r.rules))
	for _, rule := range r.rules {
		codes = append(codes, rule.Code())
	}
	return codes
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

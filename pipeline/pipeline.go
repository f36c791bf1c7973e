package pipeline

// Component represents one polymorphic pipeline component (an input, output,
// or processor). Type is the discriminant key from the source object; Body is
// that key's raw value. Config holds Body when it is an object, and is nil for
// scalar-bodied components such as string mappings.
type Component struct {
	Type   string
	Config map[string]any
	Body   any
}

// Resource represents a named, shared declaration (cache or rate limiter)
// referenced elsewhere by label.
type Resource struct {
	Label  string
	Type   string
	Config map[string]any
}

// Pipeline is the canonical form of one pipeline configuration. Processors
// preserves source declaration order exactly; order is semantically
// meaningful, several compatibility rules depend on it.
type Pipeline struct {
	Input        *Component
	Output       *Component
	Processors   []Component
	Caches       []Resource
	RateLimiters []Resource
}

// InputType returns the input component type, or "" when absent.
func (p *Pipeline) InputType() string {
	if p.Input == nil {
		return ""
	}
	return p.Input.Type
}

// OutputType returns the output component type, or "" when absent.
func (p *Pipeline) OutputType() string {
	if p.Output == nil {
		return ""
	}
	return p.Output.Type
}

// HasCache reports whether a cache resource with the given label is declared.
func (p *Pipeline) HasCache(label string) bool {
	for _, r := range p.Caches {
		if r.Label == label {
			return true
		}
	}
	return false
}

// HasRateLimiter reports whether a rate-limit resource with the given label
// is declared.
func (p *Pipeline) HasRateLimiter(label string) bool {
	for _, r := range p.RateLimiters {
		if r.Label == label {
			return true
		}
	}
	return false
}

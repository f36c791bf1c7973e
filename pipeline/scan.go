package pipeline

// Structural scanners used by compatibility rules to inspect ordered and
// nested regions of the processor list. All scanners operate on the canonical
// form only and never mutate it.

// FirstIndex returns the position of the first top-level processor with the
// given type, or -1 when none exists.
func (p *Pipeline) FirstIndex(typ string) int {
	for i, proc := range p.Processors {
		if proc.Type == typ {
			return i
		}
	}
	return -1
}

// LastIndex returns the position of the last top-level processor with the
// given type, or -1 when none exists.
func (p *Pipeline) LastIndex(typ string) int {
	for i := len(p.Processors) - 1; i >= 0; i-- {
		if p.Processors[i].Type == typ {
			return i
		}
	}
	return -1
}

// HasProcessorAfter reports whether a top-level processor with the given type
// occurs at a position strictly after index.
func (p *Pipeline) HasProcessorAfter(typ string, index int) bool {
	for i := index + 1; i < len(p.Processors); i++ {
		if p.Processors[i].Type == typ {
			return true
		}
	}
	return false
}

// Walk visits every processor depth-first, recursing into compound blocks
// (try/catch bodies, parallel fan-out lists, switch-processor cases) so that
// anti-patterns buried inside nested structures are reachable.
func (p *Pipeline) Walk(fn func(Component)) {
	walkProcessors(p.Processors, fn)
}

func walkProcessors(procs []Component, fn func(Component)) {
	for _, proc := range procs {
		fn(proc)
		walkProcessors(proc.Children(), fn)
	}
}

// Children returns the nested processors of a compound block. Three nesting
// shapes occur in practice: a list-shaped body (try, catch, for_each), a
// processors field (parallel, workflow), and switch-processor cases each
// carrying their own processors list.
func (c Component) Children() []Component {
	var children []Component

	appendEntries := func(entries []any) {
		for _, entry := range entries {
			if nested := parseProcessor(entry); nested != nil {
				children = append(children, *nested)
			}
		}
	}

	if entries, ok := c.Body.([]any); ok {
		appendEntries(entries)
	}
	if entries, ok := c.Config["processors"].([]any); ok {
		appendEntries(entries)
	}
	if cases, ok := c.Config["cases"].([]any); ok {
		for _, cs := range cases {
			obj, ok := cs.(map[string]any)
			if !ok {
				continue
			}
			if entries, ok := obj["processors"].([]any); ok {
				appendEntries(entries)
			}
		}
	}

	return children
}

// Components yields the input, every processor (nested blocks included), and
// the output, in that order. Absent stages are omitted.
func (p *Pipeline) Components() []Component {
	var all []Component
	if p.Input != nil {
		all = append(all, *p.Input)
	}
	p.Walk(func(c Component) {
		all = append(all, c)
	})
	if p.Output != nil {
		all = append(all, *p.Output)
	}
	return all
}

// MappingText returns the transformation-expression source text carried by a
// processor, or "" when it has none. Mapping-style processors carry their
// source as a scalar body; other processors may embed one under a mapping
// field.
func MappingText(c Component) string {
	switch c.Type {
	case "mapping", "bloblang":
		if text, ok := c.Body.(string); ok {
			return text
		}
	}
	if text, ok := c.Config["mapping"].(string); ok {
		return text
	}
	return ""
}

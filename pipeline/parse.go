package pipeline

import "sort"

// Parse converts an arbitrary raw configuration object into its canonical
// form. It never fails: absent or malformed sections degrade to nil fields
// and skipped entries rather than aborting the parse.
//
// The expected shape is { input?, pipeline: { processors? }, output?,
// cache_resources?, rate_limit_resources? } where each component position is
// a single-key object whose key names the component type. A multi-key input
// or output object is tolerated; its first key in sorted order wins.
func Parse(raw map[string]any) *Pipeline {
	p := &Pipeline{}
	if raw == nil {
		return p
	}

	p.Input = parseComponent(raw["input"])
	p.Output = parseComponent(raw["output"])

	if section, ok := raw["pipeline"].(map[string]any); ok {
		if entries, ok := section["processors"].([]any); ok {
			for _, entry := range entries {
				if c := parseProcessor(entry); c != nil {
					p.Processors = append(p.Processors, *c)
				}
			}
		}
	}

	p.Caches = parseResources(raw["cache_resources"])
	p.RateLimiters = parseResources(raw["rate_limit_resources"])

	return p
}

// parseComponent extracts a component from a single-key object. Multi-key
// objects are tolerated; sorted-key enumeration keeps the choice stable
// across parses.
func parseComponent(v any) *Component {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}

	typ := sortedKeys(obj)[0]
	body := obj[typ]

	c := &Component{Type: typ, Body: body}
	if cfg, ok := body.(map[string]any); ok {
		c.Config = cfg
	}
	return c
}

// parseProcessor extracts a processor entry. Entries that are not single-key
// objects are skipped; the surrounding sequence keeps its order.
func parseProcessor(v any) *Component {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) != 1 {
		return nil
	}
	return parseComponent(v)
}

// parseResources maps a top-level resource array ({ label, ...settings }
// entries) into Resource values. The settings' own discriminant key becomes
// the resource type.
func parseResources(v any) []Resource {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}

	var resources []Resource
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		r := Resource{}
		if label, ok := obj["label"].(string); ok {
			r.Label = label
		}
		for _, key := range sortedKeys(obj) {
			if key == "label" {
				continue
			}
			r.Type = key
			if cfg, ok := obj[key].(map[string]any); ok {
				r.Config = cfg
			}
			break
		}
		resources = append(resources, r)
	}
	return resources
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

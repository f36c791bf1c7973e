package pipeline

// Config helper accessors for component settings maps. The raw configuration
// is loosely typed, so every accessor tolerates a nil map, a missing key, and
// a value of the wrong type by falling back to the provided default.

// GetString safely extracts a string value from config with a default
// fallback.
func GetString(config map[string]any, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

// GetMap safely extracts a nested object from config. Returns nil when the
// key is absent or not an object.
func GetMap(config map[string]any, key string) map[string]any {
	if value, exists := config[key]; exists {
		if m, ok := value.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// GetSlice safely extracts an array from config. Returns nil when the key is
// absent or not an array.
func GetSlice(config map[string]any, key string) []any {
	if value, exists := config[key]; exists {
		if s, ok := value.([]any); ok {
			return s
		}
	}
	return nil
}

// HasField reports whether config declares the given key at all, regardless
// of its value type.
func HasField(config map[string]any, key string) bool {
	_, exists := config[key]
	return exists
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullConfig(t *testing.T) {
	raw := map[string]any{
		"input": map[string]any{
			"kafka": map[string]any{
				"addresses": []any{"localhost:9092"},
				"topics":    []any{"events"},
			},
		},
		"pipeline": map[string]any{
			"processors": []any{
				map[string]any{"mapping": "root = this"},
				map[string]any{"cache": map[string]any{"resource": "mycache", "operator": "set"}},
			},
		},
		"output": map[string]any{
			"aws_s3": map[string]any{"bucket": "archive"},
		},
		"cache_resources": []any{
			map[string]any{"label": "mycache", "memory": map[string]any{"default_ttl": "5m"}},
		},
		"rate_limit_resources": []any{
			map[string]any{"label": "api", "local": map[string]any{"count": 10}},
		},
	}

	p := Parse(raw)

	require.NotNil(t, p.Input)
	assert.Equal(t, "kafka", p.Input.Type)
	assert.Equal(t, []any{"events"}, p.Input.Config["topics"])

	require.NotNil(t, p.Output)
	assert.Equal(t, "aws_s3", p.Output.Type)

	require.Len(t, p.Processors, 2)
	assert.Equal(t, "mapping", p.Processors[0].Type)
	assert.Nil(t, p.Processors[0].Config)
	assert.Equal(t, "root = this", p.Processors[0].Body)
	assert.Equal(t, "cache", p.Processors[1].Type)
	assert.Equal(t, "mycache", p.Processors[1].Config["resource"])

	require.Len(t, p.Caches, 1)
	assert.Equal(t, "mycache", p.Caches[0].Label)
	assert.Equal(t, "memory", p.Caches[0].Type)
	assert.Equal(t, "5m", p.Caches[0].Config["default_ttl"])

	require.Len(t, p.RateLimiters, 1)
	assert.Equal(t, "api", p.RateLimiters[0].Label)
	assert.Equal(t, "local", p.RateLimiters[0].Type)
}

func TestParse_MissingSections(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "nil raw", raw: nil},
		{name: "empty raw", raw: map[string]any{}},
		{name: "unrelated keys", raw: map[string]any{"metrics": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.raw)
			require.NotNil(t, p)
			assert.Nil(t, p.Input)
			assert.Nil(t, p.Output)
			assert.Empty(t, p.Processors)
			assert.Empty(t, p.Caches)
			assert.Empty(t, p.RateLimiters)
		})
	}
}

func TestParse_MalformedSections(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "input is a string", raw: map[string]any{"input": "kafka"}},
		{name: "input is an empty object", raw: map[string]any{"input": map[string]any{}}},
		{name: "pipeline is an array", raw: map[string]any{"pipeline": []any{"mapping"}}},
		{name: "processors is a scalar", raw: map[string]any{
			"pipeline": map[string]any{"processors": "mapping"},
		}},
		{name: "resources is an object", raw: map[string]any{
			"cache_resources": map[string]any{"label": "x"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.raw)
			require.NotNil(t, p)
			assert.Nil(t, p.Input)
			assert.Empty(t, p.Processors)
			assert.Empty(t, p.Caches)
		})
	}
}

func TestParse_MultiKeyInputPicksFirstSortedKey(t *testing.T) {
	raw := map[string]any{
		"input": map[string]any{
			"kafka": map[string]any{"topics": []any{"a"}},
			"amqp":  map[string]any{"queue": "q"},
		},
	}

	p := Parse(raw)

	require.NotNil(t, p.Input)
	assert.Equal(t, "amqp", p.Input.Type)
	assert.Equal(t, "q", p.Input.Config["queue"])
}

func TestParse_SkipsMalformedProcessorEntries(t *testing.T) {
	raw := map[string]any{
		"pipeline": map[string]any{
			"processors": []any{
				"not an object",
				map[string]any{},
				map[string]any{"mapping": "root = this", "extra": true},
				map[string]any{"log": map[string]any{"message": "ok"}},
				42,
			},
		},
	}

	p := Parse(raw)

	require.Len(t, p.Processors, 1)
	assert.Equal(t, "log", p.Processors[0].Type)
}

func TestParse_ProcessorOrderPreserved(t *testing.T) {
	raw := map[string]any{
		"pipeline": map[string]any{
			"processors": []any{
				map[string]any{"try": []any{}},
				map[string]any{"mapping": "root = this"},
				map[string]any{"catch": []any{}},
			},
		},
	}

	p := Parse(raw)

	require.Len(t, p.Processors, 3)
	assert.Equal(t, "try", p.Processors[0].Type)
	assert.Equal(t, "mapping", p.Processors[1].Type)
	assert.Equal(t, "catch", p.Processors[2].Type)
}

func TestParse_ResourceWithoutSettings(t *testing.T) {
	raw := map[string]any{
		"cache_resources": []any{
			map[string]any{"label": "bare"},
			"not an object",
		},
	}

	p := Parse(raw)

	require.Len(t, p.Caches, 1)
	assert.Equal(t, "bare", p.Caches[0].Label)
	assert.Equal(t, "", p.Caches[0].Type)
	assert.True(t, p.HasCache("bare"))
	assert.False(t, p.HasCache("other"))
}

func TestParse_DoesNotMutateRaw(t *testing.T) {
	raw := map[string]any{
		"input": map[string]any{"csv": map[string]any{"paths": []any{"a.csv"}}},
	}

	_ = Parse(raw)

	require.Contains(t, raw, "input")
	input := raw["input"].(map[string]any)
	assert.Contains(t, input, "csv")
}

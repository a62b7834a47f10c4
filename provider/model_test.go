package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelDescriptorSupports(t *testing.T) {
	model := ModelDescriptor{
		ID:           "model-a",
		Capabilities: []Capability{CapabilityGenerate, CapabilityCountTokens, CapabilityUnknown},
	}

	assert.True(t, model.Supports(CapabilityGenerate))
	assert.True(t, model.Supports(CapabilityCountTokens))
	assert.False(t, model.Supports(CapabilityEmbed))

	t.Run("unknown never satisfies a check", func(t *testing.T) {
		assert.False(t, model.Supports(CapabilityUnknown))
	})
}

func TestCatalog(t *testing.T) {
	generate := func(id string) ModelDescriptor {
		return ModelDescriptor{ID: id, Capabilities: []Capability{CapabilityGenerate}}
	}
	embed := func(id string) ModelDescriptor {
		return ModelDescriptor{ID: id, Capabilities: []Capability{CapabilityEmbed}}
	}

	t.Run("preserves insertion order", func(t *testing.T) {
		catalog := NewCatalog(generate("c"), generate("a"), generate("b"))

		var ids []string
		for m := range catalog.Models() {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
		assert.Equal(t, 3, catalog.Len())
	})

	t.Run("lookup by exact id", func(t *testing.T) {
		catalog := NewCatalog(generate("model-a"))

		m, ok := catalog.Get("model-a")
		require.True(t, ok)
		assert.Equal(t, "model-a", m.ID)

		_, ok = catalog.Get("model")
		assert.False(t, ok, "prefix must not match")
	})

	t.Run("re-adding an id replaces in place", func(t *testing.T) {
		catalog := NewCatalog(generate("a"), generate("b"))
		catalog.Add(embed("a"))

		assert.Equal(t, 2, catalog.Len())
		m, ok := catalog.Get("a")
		require.True(t, ok)
		assert.False(t, m.Supports(CapabilityGenerate))

		var ids []string
		for m := range catalog.Models() {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"a", "b"}, ids, "position is kept on replace")
	})

	t.Run("first capable in catalog order", func(t *testing.T) {
		catalog := NewCatalog(embed("embedder"), generate("gen-1"), generate("gen-2"))

		m, ok := catalog.FirstCapable(CapabilityGenerate)
		require.True(t, ok)
		assert.Equal(t, "gen-1", m.ID)

		_, ok = catalog.FirstCapable(CapabilityTune)
		assert.False(t, ok)
	})

	t.Run("empty catalog", func(t *testing.T) {
		catalog := NewCatalog()
		assert.Equal(t, 0, catalog.Len())
		_, ok := catalog.FirstCapable(CapabilityGenerate)
		assert.False(t, ok)
	})
}

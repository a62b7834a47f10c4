package oneshot

import (
	"fmt"
	"strings"

	"github.com/oneshot-dev/oneshot/provider"
)

// Select picks the model to run a completion on. The preference list is
// walked in order and the first entry whose exact ID is present in the
// catalog with generation capability wins; preference order decides priority,
// catalog order never does. When nothing preferred matches, the first
// generation-capable catalog entry is used instead, unless strict selection
// is on, in which case the run fails rather than silently substituting a
// model the caller never asked for.
//
// Selection is pure: the same (catalog, preferred, strict) always yields the
// same descriptor.
func Select(catalog *provider.Catalog, preferred []string, strict bool) (provider.ModelDescriptor, error) {
	for _, id := range preferred {
		if m, ok := catalog.Get(id); ok && m.Supports(provider.CapabilityGenerate) {
			return m, nil
		}
	}

	fallback, ok := catalog.FirstCapable(provider.CapabilityGenerate)
	if !ok {
		return provider.ModelDescriptor{}, provider.ErrNoUsableModel
	}
	if strict && len(preferred) > 0 {
		return provider.ModelDescriptor{}, fmt.Errorf("%w: none of [%s] is in the catalog with generation capability",
			provider.ErrNoPreferredModel, strings.Join(preferred, ", "))
	}
	return fallback, nil
}

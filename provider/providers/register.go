// Package providers keeps a process-wide registry of provider factories so
// a backend can be picked by name at startup.
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oneshot-dev/oneshot/internal/registry"
	"github.com/oneshot-dev/oneshot/provider"
)

// Factory constructs a provider from a credential. Credential validation
// happens inside the factory, before any network activity.
type Factory func(ctx context.Context, apiKey string) (provider.Provider, error)

var global = registry.New[Factory]()

func Register(name string, factory Factory) {
	global.Add(name, factory)
}

func Get(name string) (Factory, bool) {
	return global.Get(name)
}

// Names returns the registered provider names, sorted.
func Names() []string {
	return global.Names()
}

// New looks a factory up by name and invokes it.
func New(ctx context.Context, name, apiKey string) (provider.Provider, error) {
	factory, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(ctx, apiKey)
}

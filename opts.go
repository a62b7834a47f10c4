package oneshot

import (
	"time"

	"github.com/fogfish/opts"
	"github.com/rs/zerolog"
)

// WithPrompt sets the prompt for the run. An empty prompt is legal and is
// sent to the provider as-is.
func WithPrompt(prompt string) opts.Option[Client] {
	return opts.Type[Client](func(c *Client) error {
		c.prompt = prompt
		return nil
	})
}

// WithPreferredModels replaces the model preference list, most preferred
// first. Entries are matched against catalog IDs exactly.
func WithPreferredModels(ids ...string) opts.Option[Client] {
	return opts.Type[Client](func(c *Client) error {
		c.prefs = ids
		return nil
	})
}

// WithStrict disables the fallback to the first generation-capable catalog
// entry: when no preferred model is available the run fails with
// provider.ErrNoPreferredModel instead of substituting one.
func WithStrict() opts.Option[Client] {
	return opts.Type[Client](func(c *Client) error {
		c.strict = true
		return nil
	})
}

// WithTimeout bounds each of the two network calls. Zero or negative
// disables the bound.
var WithTimeout = opts.ForName[Client, time.Duration]("timeout")

// WithTemperature forwards a sampling temperature to the provider when > 0.
var WithTemperature = opts.ForName[Client, float64]("temperature")

// WithMaxOutputTokens caps the response length when > 0.
var WithMaxOutputTokens = opts.ForName[Client, int64]("maxTokens")

// WithLogger attaches a logger; runs log under a per-run UUID. Defaults to a
// no-op logger.
var WithLogger = opts.ForName[Client, zerolog.Logger]("log")

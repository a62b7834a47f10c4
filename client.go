package oneshot

import (
	"context"
	"fmt"
	"time"

	"github.com/fogfish/opts"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oneshot-dev/oneshot/provider"
)

// DefaultPrompt is sent when the caller does not supply one.
const DefaultPrompt = "Explain what an AI agent is in 2-3 sentences."

// DefaultModels is the default preference list, most preferred first.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
}

// Client executes the completion pipeline against one provider. All
// configuration is explicit: the client never reads environment variables or
// other ambient state.
type Client struct {
	prov        provider.Provider
	prompt      string
	prefs       []string
	strict      bool
	timeout     time.Duration
	temperature float64
	maxTokens   int64
	log         zerolog.Logger
}

// Report is the outcome of one run: which model was selected and what it
// produced. Consumed once for display, never persisted.
type Report struct {
	RunID    uuid.UUID                 `json:"runId"`
	Provider string                    `json:"provider"`
	Model    provider.ModelDescriptor  `json:"model"`
	Result   provider.CompletionResult `json:"result"`
}

// New builds a client for the given provider. Defaults: DefaultPrompt,
// DefaultModels, fallback selection enabled, 30s per-call timeout,
// temperature 0.1.
func New(prov provider.Provider, options ...opts.Option[Client]) (*Client, error) {
	if prov == nil {
		return nil, fmt.Errorf("provider is required")
	}
	client := &Client{
		prov:        prov,
		prompt:      DefaultPrompt,
		prefs:       DefaultModels,
		timeout:     30 * time.Second,
		temperature: 0.1,
		log:         zerolog.Nop(),
	}
	if err := opts.Apply(client, options); err != nil {
		return nil, err
	}
	return client, nil
}

// Catalog fetches the provider's model catalog under the configured timeout.
// A failed fetch or an empty catalog is ErrProviderUnavailable.
func (c *Client) Catalog(ctx context.Context) (*provider.Catalog, error) {
	lctx, cancel := c.bound(ctx)
	defer cancel()

	catalog, err := c.prov.ListModels(lctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrProviderUnavailable, err)
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: provider returned an empty model catalog", provider.ErrProviderUnavailable)
	}
	return catalog, nil
}

// Run executes the pipeline: list models, select one, generate, and return
// the report. Each operation runs exactly once; the first failure halts the
// run with its failure kind in the wrap chain.
func (c *Client) Run(ctx context.Context) (*Report, error) {
	runID := uuid.New()
	log := c.log.With().Stringer("run", runID).Str("provider", c.prov.Name()).Logger()

	catalog, err := c.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("models", catalog.Len()).Msg("fetched model catalog")

	model, err := Select(catalog, c.prefs, c.strict)
	if err != nil {
		return nil, err
	}
	log.Info().Str("model", model.ID).Msg("selected model")

	gctx, cancel := c.bound(ctx)
	defer cancel()

	result, err := c.prov.Complete(gctx, provider.CompletionRequest{
		Model:           model.ID,
		Prompt:          c.prompt,
		Temperature:     c.temperature,
		MaxOutputTokens: c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrGenerationFailed, err)
	}
	log.Info().
		Str("finishReason", string(result.FinishReason)).
		Int("safetyChecks", result.SafetyChecks).
		Int64("totalTokens", result.Usage.TotalTokens).
		Msg("completion finished")

	return &Report{
		RunID:    runID,
		Provider: c.prov.Name(),
		Model:    model,
		Result:   result,
	}, nil
}

func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

package provider

import (
	"context"
	"iter"

	"github.com/go-openapi/strfmt"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Provider is the contract a model backend implements. Exactly two remote
// operations exist: one catalog fetch and one completion. Implementations
// must honor context cancellation on both.
type Provider interface {
	// Name identifies the backend (e.g. "gemini", "openai").
	Name() string

	// ListModels returns the models reachable by the configured credential,
	// in the order the backend reports them.
	ListModels(ctx context.Context) (*Catalog, error)

	// Complete issues exactly one synchronous generation request. No retry,
	// no streaming.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// Capability is a named operation a model supports.
type Capability string

const (
	CapabilityGenerate    Capability = "generate"
	CapabilityEmbed       Capability = "embed"
	CapabilityCountTokens Capability = "count-tokens"
	CapabilityTune        Capability = "tune"

	// CapabilityUnknown is assigned to backend operations this package does
	// not recognize. It never satisfies a capability check.
	CapabilityUnknown Capability = "unknown"
)

// ModelDescriptor describes one catalog entry. Read-only once built.
type ModelDescriptor struct {
	// ID is the exact identifier used to invoke the model.
	ID string `json:"id"`

	// DisplayName is the human-readable name, when the backend provides one.
	DisplayName string `json:"displayName,omitempty"`

	// Capabilities holds the operations the backend reports for this model,
	// in the order reported.
	Capabilities []Capability `json:"capabilities,omitempty"`
}

// Supports reports whether the descriptor carries the given capability.
// CapabilityUnknown entries never match.
func (m ModelDescriptor) Supports(c Capability) bool {
	if c == CapabilityUnknown {
		return false
	}
	for _, have := range m.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Catalog is an insertion-ordered collection of model descriptors with O(1)
// lookup by ID. Order is the backend's reporting order and is preserved for
// fallback selection.
type Catalog struct {
	models *orderedmap.OrderedMap[string, ModelDescriptor]
}

func NewCatalog(models ...ModelDescriptor) *Catalog {
	c := &Catalog{models: orderedmap.New[string, ModelDescriptor]()}
	for _, m := range models {
		c.Add(m)
	}
	return c
}

// Add appends a descriptor. Re-adding an ID keeps its original position and
// replaces the descriptor.
func (c *Catalog) Add(m ModelDescriptor) {
	c.models.Set(m.ID, m)
}

// Get looks a descriptor up by exact ID.
func (c *Catalog) Get(id string) (ModelDescriptor, bool) {
	return c.models.Get(id)
}

func (c *Catalog) Len() int {
	return c.models.Len()
}

// Models iterates the catalog in insertion order.
func (c *Catalog) Models() iter.Seq[ModelDescriptor] {
	return func(yield func(ModelDescriptor) bool) {
		for pair := c.models.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// FirstCapable returns the first descriptor, in catalog order, that supports
// the given capability.
func (c *Catalog) FirstCapable(capability Capability) (ModelDescriptor, bool) {
	for m := range c.Models() {
		if m.Supports(capability) {
			return m, true
		}
	}
	return ModelDescriptor{}, false
}

// CompletionRequest pairs a prompt with the model it should run on. The
// prompt is sent as-is; an empty prompt is legal and is not rejected
// client-side.
type CompletionRequest struct {
	Model  string
	Prompt string

	// Temperature is forwarded when > 0, otherwise the backend default applies.
	Temperature float64

	// MaxOutputTokens caps the response when > 0.
	MaxOutputTokens int64

	// Prevents unkeyed literals
	_ struct{}
}

// FinishReason enumerates why generation stopped.
type FinishReason string

const (
	FinishReasonStop   FinishReason = "stop"
	FinishReasonLength FinishReason = "length"
	FinishReasonSafety FinishReason = "safety"
	FinishReasonOther  FinishReason = "other"
)

// Usage reports token accounting when the backend provides it.
type Usage struct {
	PromptTokens     int64 `json:"promptTokens,omitempty"`
	CompletionTokens int64 `json:"completionTokens,omitempty"`
	TotalTokens      int64 `json:"totalTokens,omitempty"`
}

// CompletionResult is the outcome of one generation call. Created once,
// consumed for display, never stored.
type CompletionResult struct {
	// Model is the ID the completion actually ran on.
	Model string `json:"model"`

	// Text is the generated text, verbatim. May be empty.
	Text string `json:"text"`

	FinishReason FinishReason `json:"finishReason"`

	// SafetyChecks counts the safety-rating entries the backend returned.
	SafetyChecks int `json:"safetyChecks"`

	// Candidates counts the returned candidate responses.
	Candidates int `json:"candidates"`

	Usage Usage `json:"usage"`

	Timestamp strfmt.DateTime `json:"timestamp"`
}

package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/oneshot-dev/oneshot/provider"
)

func TestNewRejectsEmptyCredential(t *testing.T) {
	for _, key := range []string{"", "   ", "\t\n"} {
		_, err := New(context.Background(), key)
		require.ErrorIs(t, err, provider.ErrMissingCredential)
	}
}

func TestDescriptorFor(t *testing.T) {
	model := &genai.Model{
		Name:        "models/gemini-2.5-flash",
		DisplayName: "Gemini 2.5 Flash",
		SupportedActions: []string{
			"generateContent",
			"countTokens",
			"batchEmbedContents",
			"bidiGenerateContent",
		},
	}

	desc := descriptorFor(model)
	assert.Equal(t, "gemini-2.5-flash", desc.ID, "resource prefix is stripped")
	assert.Equal(t, "Gemini 2.5 Flash", desc.DisplayName)
	assert.Equal(t, []provider.Capability{
		provider.CapabilityGenerate,
		provider.CapabilityCountTokens,
		provider.CapabilityEmbed,
		provider.CapabilityUnknown,
	}, desc.Capabilities)
	assert.True(t, desc.Supports(provider.CapabilityGenerate))
}

func TestCapabilityForAction(t *testing.T) {
	tests := []struct {
		action string
		want   provider.Capability
	}{
		{"generateContent", provider.CapabilityGenerate},
		{"generateText", provider.CapabilityGenerate},
		{"embedContent", provider.CapabilityEmbed},
		{"batchEmbedContents", provider.CapabilityEmbed},
		{"countTokens", provider.CapabilityCountTokens},
		{"createTunedModel", provider.CapabilityTune},
		{"predict", provider.CapabilityUnknown},
		{"", provider.CapabilityUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, capabilityForAction(tt.action))
		})
	}
}

func TestFinishReason(t *testing.T) {
	tests := []struct {
		reason genai.FinishReason
		want   provider.FinishReason
	}{
		{genai.FinishReasonStop, provider.FinishReasonStop},
		{genai.FinishReasonMaxTokens, provider.FinishReasonLength},
		{genai.FinishReasonSafety, provider.FinishReasonSafety},
		{genai.FinishReasonRecitation, provider.FinishReasonSafety},
		{genai.FinishReasonProhibitedContent, provider.FinishReasonSafety},
		{genai.FinishReasonOther, provider.FinishReasonOther},
		{genai.FinishReasonUnspecified, provider.FinishReasonOther},
	}
	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			assert.Equal(t, tt.want, finishReason(tt.reason))
		})
	}
}

func TestResponseText(t *testing.T) {
	t.Run("concatenates text parts of the first candidate", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "An AI agent "},
					{Text: "acts on your behalf."},
				}},
			}},
		}
		assert.Equal(t, "An AI agent acts on your behalf.", responseText(resp))
	})

	t.Run("empty response yields empty text", func(t *testing.T) {
		assert.Equal(t, "", responseText(&genai.GenerateContentResponse{}))
	})

	t.Run("candidate without content yields empty text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		assert.Equal(t, "", responseText(resp))
	})
}

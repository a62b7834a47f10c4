package openai

import (
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneshot-dev/oneshot/provider"
)

func TestNew(t *testing.T) {
	t.Run("rejects an empty credential", func(t *testing.T) {
		for _, key := range []string{"", "  "} {
			_, err := New(key)
			require.ErrorIs(t, err, provider.ErrMissingCredential)
		}
	})

	t.Run("constructs with a credential", func(t *testing.T) {
		p, err := New("sk-test")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})
}

func TestFinishReason(t *testing.T) {
	tests := []struct {
		reason openai.ChatCompletionChoicesFinishReason
		want   provider.FinishReason
	}{
		{openai.ChatCompletionChoicesFinishReasonStop, provider.FinishReasonStop},
		{openai.ChatCompletionChoicesFinishReasonLength, provider.FinishReasonLength},
		{openai.ChatCompletionChoicesFinishReasonContentFilter, provider.FinishReasonSafety},
		{openai.ChatCompletionChoicesFinishReasonToolCalls, provider.FinishReasonOther},
		{"", provider.FinishReasonOther},
	}
	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			assert.Equal(t, tt.want, finishReason(tt.reason))
		})
	}
}

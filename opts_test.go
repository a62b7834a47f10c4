package oneshot

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	client, err := New(&fakeProvider{},
		WithPrompt("why is the sky blue?"),
		WithPreferredModels("model-a", "model-b"),
		WithStrict(),
		WithTimeout(5*time.Second),
		WithTemperature(0.9),
		WithMaxOutputTokens(128),
		WithLogger(zerolog.Nop()),
	)
	require.NoError(t, err)

	assert.Equal(t, "why is the sky blue?", client.prompt)
	assert.Equal(t, []string{"model-a", "model-b"}, client.prefs)
	assert.True(t, client.strict)
	assert.Equal(t, 5*time.Second, client.timeout)
	assert.InDelta(t, 0.9, client.temperature, 1e-9)
	assert.EqualValues(t, 128, client.maxTokens)
}

func TestWithTimeoutZeroDisablesTheBound(t *testing.T) {
	client, err := New(&fakeProvider{}, WithTimeout(0))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), client.timeout)
}

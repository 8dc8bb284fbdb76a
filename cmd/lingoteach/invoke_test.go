// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoteach/lingoteach/pkg/alexa"
)

func TestBuildEnvelopeLaunch(t *testing.T) {
	env, err := buildEnvelope(alexa.TypeLaunchRequest, "", "", "", "dev-1")
	require.NoError(t, err)

	assert.Equal(t, alexa.TypeLaunchRequest, env.Request.Type)
	assert.Nil(t, env.Request.Intent)
	assert.Equal(t, "dev-1", env.DeviceID())
	assert.NotEmpty(t, env.Request.RequestID)
}

func TestBuildEnvelopeAsk(t *testing.T) {
	env, err := buildEnvelope(alexa.TypeIntentRequest, alexa.IntentAsk, "Hello", "", "dev-1")
	require.NoError(t, err)

	require.True(t, env.IsIntent(alexa.IntentAsk))
	slot, ok := env.Slot("phrase")
	require.True(t, ok)
	assert.Equal(t, "Hello", slot.Value)
}

func TestBuildEnvelopeSetLanguageResolved(t *testing.T) {
	env, err := buildEnvelope(alexa.TypeIntentRequest, alexa.IntentSetLanguage, "", "ja", "dev-1")
	require.NoError(t, err)

	slot, ok := env.Slot("language")
	require.True(t, ok)
	id, name, resolved := slot.Resolved()
	require.True(t, resolved)
	assert.Equal(t, "ja", id)
	assert.Equal(t, "Japanese", name)
}

func TestBuildEnvelopeSetLanguageUnknownCode(t *testing.T) {
	env, err := buildEnvelope(alexa.TypeIntentRequest, alexa.IntentSetLanguage, "", "xx", "dev-1")
	require.NoError(t, err)

	slot, ok := env.Slot("language")
	require.True(t, ok)
	_, _, resolved := slot.Resolved()
	assert.False(t, resolved)
}

func TestBuildEnvelopeUniqueRequestIDs(t *testing.T) {
	a, err := buildEnvelope(alexa.TypeLaunchRequest, "", "", "", "dev-1")
	require.NoError(t, err)
	b, err := buildEnvelope(alexa.TypeLaunchRequest, "", "", "", "dev-1")
	require.NoError(t, err)
	assert.NotEqual(t, a.Request.RequestID, b.Request.RequestID)
}

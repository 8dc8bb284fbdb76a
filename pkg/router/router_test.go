// LingoTeach - language-teaching voice skill backend
// License: MIT

package router

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/cache"
	"github.com/lingoteach/lingoteach/pkg/pipeline"
	"github.com/lingoteach/lingoteach/pkg/prefs"
)

const testDevice = "amzn1.ask.device.test"

type fakeTranslator struct {
	lastTarget string
	err        error
}

func (f *fakeTranslator) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	f.lastTarget = targetLang
	if f.err != nil {
		return "", f.err
	}
	return "translated:" + text, nil
}

type fakeSpeaker struct {
	err error
}

func (f *fakeSpeaker) Synthesize(_ context.Context, ssml, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(ssml), nil
}

type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Put(_ context.Context, key string, body []byte) error {
	f.objects[key] = body
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStore) URL(key string) string {
	return "https://cdn.test/" + key
}

type failingPrefs struct {
	prefs.Store
	setErr error
	getErr error
}

func (f *failingPrefs) Get(ctx context.Context, identity string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.Store.Get(ctx, identity)
}

func (f *failingPrefs) Set(ctx context.Context, identity, code string) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, identity, code)
}

type fixture struct {
	router     *Router
	prefs      prefs.Store
	store      *fakeStore
	translator *fakeTranslator
	speaker    *fakeSpeaker
	audioCache *cache.AudioCache
}

func newFixture(store prefs.Store) *fixture {
	translator := &fakeTranslator{}
	speaker := &fakeSpeaker{}
	objects := newFakeStore()
	audioCache := cache.New(objects)
	pipe := pipeline.New(translator, speaker, audioCache)
	opts := Options{
		CardSmallURL: "https://pics.test/globe_small.png",
		CardLargeURL: "https://pics.test/globe_big.png",
	}
	return &fixture{
		router:     New(pipe, store, audioCache, opts),
		prefs:      store,
		store:      objects,
		translator: translator,
		speaker:    speaker,
		audioCache: audioCache,
	}
}

func launchRequest() *alexa.RequestEnvelope {
	return &alexa.RequestEnvelope{
		Version: "1.0",
		Context: alexa.Context{System: alexa.System{Device: alexa.Device{DeviceID: testDevice}}},
		Request: alexa.Request{Type: alexa.TypeLaunchRequest},
	}
}

func intentRequest(name string, slots map[string]alexa.Slot) *alexa.RequestEnvelope {
	return &alexa.RequestEnvelope{
		Version: "1.0",
		Context: alexa.Context{System: alexa.System{Device: alexa.Device{DeviceID: testDevice}}},
		Request: alexa.Request{
			Type:   alexa.TypeIntentRequest,
			Intent: &alexa.Intent{Name: name, Slots: slots},
		},
	}
}

func matchedLanguageSlot(id, name string) map[string]alexa.Slot {
	return map[string]alexa.Slot{
		"language": {
			Name:  "language",
			Value: name,
			Resolutions: &alexa.Resolutions{
				ResolutionsPerAuthority: []alexa.Resolution{
					{
						Status: alexa.ResolutionStatus{Code: alexa.StatusMatch},
						Values: []alexa.ResolutionValue{
							{Value: alexa.SlotValue{Name: name, ID: id}},
						},
					},
				},
			},
		},
	}
}

func speech(resp alexa.ResponseEnvelope) string {
	if resp.Response.OutputSpeech == nil {
		return ""
	}
	return resp.Response.OutputSpeech.SSML
}

func TestLaunchRequest(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())

	resp := f.router.Route(context.Background(), launchRequest())

	assert.Equal(t, "<speak>"+msgWelcome+"</speak>", speech(resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, "<speak>"+msgWhatDoYouWant+"</speak>", resp.Response.Reprompt.OutputSpeech.SSML)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestHelpIntent(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())

	resp := f.router.Route(context.Background(), intentRequest(alexa.IntentHelp, nil))

	assert.Equal(t, "<speak>"+msgHelp+"</speak>", speech(resp))
}

func TestAskIntentFallbackLanguage(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	env := intentRequest(alexa.IntentAsk, map[string]alexa.Slot{
		"phrase": {Name: "phrase", Value: "Hello"},
	})

	resp := f.router.Route(context.Background(), env)

	assert.Equal(t, "ru", f.translator.lastTarget, "absent preference falls back")

	out := speech(resp)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Russian")
	assert.Contains(t, out, cache.Key(testDevice))
	assert.Contains(t, out, `<audio src="https://cdn.test/`+cache.Key(testDevice)+`/speech.mp3"/>`)

	require.NotNil(t, resp.Response.Card)
	assert.Equal(t, cardTitle, resp.Response.Card.Title)
	assert.Equal(t, "Original phrase: Hello\nTranslation in Russian: translated:Hello", resp.Response.Card.Text)
	assert.Equal(t, "https://pics.test/globe_small.png", resp.Response.Card.Image.SmallImageURL)
}

func TestAskIntentUsesStoredPreference(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), testDevice, "ja"))
	f := newFixture(store)

	resp := f.router.Route(context.Background(), intentRequest(alexa.IntentAsk, map[string]alexa.Slot{
		"phrase": {Name: "phrase", Value: "Good morning"},
	}))

	assert.Equal(t, "ja", f.translator.lastTarget)
	assert.Contains(t, speech(resp), "Japanese")
}

func TestAskIntentPipelineFault(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	f.speaker.err = errors.New("voice unavailable")

	resp := f.router.Route(context.Background(), intentRequest(alexa.IntentAsk, map[string]alexa.Slot{
		"phrase": {Name: "phrase", Value: "Hello"},
	}))

	assert.Equal(t, "<speak>"+msgError+"</speak>", speech(resp), "a pipeline fault becomes the generic spoken error")
	assert.Empty(t, f.store.objects, "nothing is cached on failure")
}

func TestSetLanguageRoundTrip(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	ctx := context.Background()

	resp := f.router.Route(ctx, intentRequest(alexa.IntentSetLanguage, matchedLanguageSlot("ja", "Japanese")))

	assert.Equal(t, "<speak>Ok, I set the language to Japanese. "+msgNext+"</speak>", speech(resp))

	code, ok, err := f.prefs.Get(ctx, testDevice)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ja", code)
}

func TestSetLanguageUnresolvedSlot(t *testing.T) {
	noMatch := map[string]alexa.Slot{
		"language": {
			Name:  "language",
			Value: "klingon",
			Resolutions: &alexa.Resolutions{
				ResolutionsPerAuthority: []alexa.Resolution{
					{Status: alexa.ResolutionStatus{Code: "ER_SUCCESS_NO_MATCH"}},
				},
			},
		},
	}

	tests := []struct {
		name  string
		slots map[string]alexa.Slot
	}{
		{name: "no match status", slots: noMatch},
		{name: "missing resolutions", slots: map[string]alexa.Slot{
			"language": {Name: "language", Value: "klingon"},
		}},
		{name: "zero authorities", slots: map[string]alexa.Slot{
			"language": {Name: "language", Value: "klingon", Resolutions: &alexa.Resolutions{}},
		}},
		{name: "missing slot", slots: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(prefs.NewMemoryStore())

			resp := f.router.Route(context.Background(), intentRequest(alexa.IntentSetLanguage, tt.slots))

			assert.Equal(t, "<speak>"+msgUnknownLanguage+"</speak>", speech(resp))
			require.NotNil(t, resp.Response.Reprompt)
			assert.Equal(t, "<speak>"+msgWhichLanguage+"</speak>", resp.Response.Reprompt.OutputSpeech.SSML)

			_, ok, err := f.prefs.Get(context.Background(), testDevice)
			require.NoError(t, err)
			assert.False(t, ok, "nothing is persisted without an exact match")
		})
	}
}

func TestSetLanguagePersistFailure(t *testing.T) {
	store := &failingPrefs{Store: prefs.NewMemoryStore(), setErr: errors.New("table unavailable")}
	f := newFixture(store)

	resp := f.router.Route(context.Background(), intentRequest(alexa.IntentSetLanguage, matchedLanguageSlot("de", "German")))

	assert.Equal(t, "<speak>"+msgError+"</speak>", speech(resp), "an unconfirmed write is never reported as success")
}

func TestPreferenceReadFailureFallsBack(t *testing.T) {
	store := &failingPrefs{Store: prefs.NewMemoryStore(), getErr: errors.New("table unavailable")}
	f := newFixture(store)

	f.router.Route(context.Background(), intentRequest(alexa.IntentAsk, map[string]alexa.Slot{
		"phrase": {Name: "phrase", Value: "Hello"},
	}))

	assert.Equal(t, "ru", f.translator.lastTarget)
}

func TestRepeatIntentNothingCached(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())

	resp := f.router.Route(context.Background(), intentRequest(alexa.IntentRepeat, nil))

	assert.Equal(t, "<speak>"+msgRepeatNA+"</speak>", speech(resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, "<speak>"+msgWhatDoYouWant+"</speak>", resp.Response.Reprompt.OutputSpeech.SSML)
}

func TestRepeatIntentReplaysCachedAudio(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, f.audioCache.Write(ctx, testDevice, []byte("audio")))

	resp := f.router.Route(ctx, intentRequest(alexa.IntentRepeat, nil))

	out := speech(resp)
	assert.Contains(t, out, `<audio src="https://cdn.test/`+cache.Key(testDevice)+`/speech.mp3"/>`)
	assert.Contains(t, out, msgRepeatHint)
}

func TestCancelAndStopEndSession(t *testing.T) {
	for _, intent := range []string{alexa.IntentCancel, alexa.IntentStop} {
		t.Run(intent, func(t *testing.T) {
			f := newFixture(prefs.NewMemoryStore())

			resp := f.router.Route(context.Background(), intentRequest(intent, nil))

			assert.Equal(t, "<speak>"+msgGoodbye+"</speak>", speech(resp))
			assert.Nil(t, resp.Response.Reprompt)
			assert.True(t, resp.Response.ShouldEndSession)
		})
	}
}

func TestSessionEndedRequest(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	env := launchRequest()
	env.Request.Type = alexa.TypeSessionEndedRequest
	env.Request.Reason = "USER_INITIATED"

	resp := f.router.Route(context.Background(), env)

	assert.Nil(t, resp.Response.OutputSpeech, "session end gets an empty response")
}

func TestUnknownIntentFallsThrough(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())

	resp := f.router.Route(context.Background(), intentRequest("SomeNewIntent", nil))

	assert.Equal(t, "<speak>"+msgUnhandled+"</speak>", speech(resp))
	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, "<speak>"+msgUnhandled+"</speak>", resp.Response.Reprompt.OutputSpeech.SSML)
}

func TestEveryRequestGetsAResponse(t *testing.T) {
	f := newFixture(prefs.NewMemoryStore())
	for i, env := range []*alexa.RequestEnvelope{
		launchRequest(),
		intentRequest("CompletelyUnknown", nil),
		{Version: "1.0", Request: alexa.Request{Type: "SomethingNew"}},
	} {
		resp := f.router.Route(context.Background(), env)
		assert.NotEmpty(t, resp.Version, fmt.Sprintf("request %d must produce an envelope", i))
	}
}

// LingoTeach - language-teaching voice skill backend
// License: MIT

package router

import (
	"context"
	"fmt"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/cache"
	"github.com/lingoteach/lingoteach/pkg/logger"
	"github.com/lingoteach/lingoteach/pkg/pipeline"
	"github.com/lingoteach/lingoteach/pkg/prefs"
)

type launchHandler struct{}

func (h *launchHandler) CanHandle(s *Session) bool {
	return s.Envelope.Request.Type == alexa.TypeLaunchRequest
}

func (h *launchHandler) Handle(_ context.Context, _ *Session) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponseBuilder().
		Speak(msgWelcome).
		Reprompt(msgWhatDoYouWant).
		Build(), nil
}

type helpHandler struct{}

func (h *helpHandler) CanHandle(s *Session) bool {
	return s.Envelope.IsIntent(alexa.IntentHelp)
}

func (h *helpHandler) Handle(_ context.Context, _ *Session) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponseBuilder().
		Speak(msgHelp).
		Reprompt(msgWhatDoYouWant).
		Build(), nil
}

type setLanguageHandler struct {
	prefs prefs.Store
}

func (h *setLanguageHandler) CanHandle(s *Session) bool {
	return s.Envelope.IsIntent(alexa.IntentSetLanguage)
}

// Handle persists the resolved language before responding. Any resolution
// shape other than an exact match produces the guidance prompt, never an
// error back to the platform.
func (h *setLanguageHandler) Handle(ctx context.Context, s *Session) (alexa.ResponseEnvelope, error) {
	slot, _ := s.Envelope.Slot("language")
	code, name, ok := slot.Resolved()
	if !ok {
		return alexa.NewResponseBuilder().
			Speak(msgUnknownLanguage).
			Reprompt(msgWhichLanguage).
			Build(), nil
	}

	if err := h.prefs.Set(ctx, s.Identity, code); err != nil {
		return alexa.ResponseEnvelope{}, fmt.Errorf("persist language preference: %w", err)
	}

	return alexa.NewResponseBuilder().
		Speak(fmt.Sprintf("Ok, I set the language to %s. %s", name, msgNext)).
		Reprompt(msgNext).
		Build(), nil
}

type cancelHandler struct{}

func (h *cancelHandler) CanHandle(s *Session) bool {
	return s.Envelope.IsIntent(alexa.IntentCancel) || s.Envelope.IsIntent(alexa.IntentStop)
}

func (h *cancelHandler) Handle(_ context.Context, _ *Session) (alexa.ResponseEnvelope, error) {
	// No reprompt: the session ends.
	return alexa.NewResponseBuilder().Speak(msgGoodbye).Build(), nil
}

type sessionEndedHandler struct{}

func (h *sessionEndedHandler) CanHandle(s *Session) bool {
	return s.Envelope.Request.Type == alexa.TypeSessionEndedRequest
}

func (h *sessionEndedHandler) Handle(_ context.Context, s *Session) (alexa.ResponseEnvelope, error) {
	logger.InfoCF("router", "Session ended", map[string]any{
		"reason": s.Envelope.Request.Reason,
	})
	return alexa.EmptyResponse(), nil
}

type askHandler struct {
	pipe *pipeline.Pipeline
	opts Options
}

func (h *askHandler) CanHandle(s *Session) bool {
	return s.Envelope.IsIntent(alexa.IntentAsk)
}

func (h *askHandler) Handle(ctx context.Context, s *Session) (alexa.ResponseEnvelope, error) {
	slot, _ := s.Envelope.Slot("phrase")

	pb, err := h.pipe.Run(ctx, slot.Value, s.Language, s.Identity)
	if err != nil {
		return alexa.ResponseEnvelope{}, err
	}

	speech := fmt.Sprintf(`This is how phrase %s will sound in %s: <audio src="%s"/> %s`,
		pb.Phrase, pb.LanguageName, pb.AudioURL, msgRepeatHint)
	cardText := fmt.Sprintf("Original phrase: %s\nTranslation in %s: %s",
		pb.Phrase, pb.LanguageName, pb.Translation)

	return alexa.NewResponseBuilder().
		Speak(speech).
		Reprompt(msgRepeatHint).
		WithStandardCard(cardTitle, cardText, h.opts.CardSmallURL, h.opts.CardLargeURL).
		Build(), nil
}

type repeatHandler struct {
	cache *cache.AudioCache
}

func (h *repeatHandler) CanHandle(s *Session) bool {
	return s.Envelope.IsIntent(alexa.IntentRepeat)
}

// Handle checks only for the presence of cached audio; a miss is an alternate
// response, not a fault.
func (h *repeatHandler) Handle(ctx context.Context, s *Session) (alexa.ResponseEnvelope, error) {
	ok, err := h.cache.Exists(ctx, s.Identity)
	if err != nil {
		return alexa.ResponseEnvelope{}, fmt.Errorf("check cached audio: %w", err)
	}
	if !ok {
		return alexa.NewResponseBuilder().
			Speak(msgRepeatNA).
			Reprompt(msgWhatDoYouWant).
			Build(), nil
	}

	speech := fmt.Sprintf(`<audio src="%s"/> %s`, h.cache.URL(s.Identity), msgRepeatHint)
	return alexa.NewResponseBuilder().
		Speak(speech).
		Reprompt(msgRepeatHint).
		Build(), nil
}

type unhandledHandler struct{}

func (h *unhandledHandler) CanHandle(_ *Session) bool {
	return true
}

func (h *unhandledHandler) Handle(_ context.Context, _ *Session) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponseBuilder().
		Speak(msgUnhandled).
		Reprompt(msgUnhandled).
		Build(), nil
}

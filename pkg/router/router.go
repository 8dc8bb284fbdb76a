// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package router matches incoming platform requests to handlers. Handlers are
// tried in registration order and the first match wins; the catch-all handler
// registered last guarantees every request gets a response.
package router

import (
	"context"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/cache"
	"github.com/lingoteach/lingoteach/pkg/catalog"
	"github.com/lingoteach/lingoteach/pkg/logger"
	"github.com/lingoteach/lingoteach/pkg/pipeline"
	"github.com/lingoteach/lingoteach/pkg/prefs"
)

// Session is the request-scoped context handed to handlers. It is built at
// request start and discarded with the response; only the language code
// inside it is ever persisted, and that separately through the Store.
type Session struct {
	Envelope *alexa.RequestEnvelope
	// Identity is the calling device identifier.
	Identity string
	// Language is the resolved preference with the fallback already applied.
	Language string
}

// Handler is one recognized request kind.
type Handler interface {
	CanHandle(s *Session) bool
	Handle(ctx context.Context, s *Session) (alexa.ResponseEnvelope, error)
}

// Options carries the response decorations that come from configuration.
type Options struct {
	CardSmallURL string
	CardLargeURL string
}

type Router struct {
	handlers []Handler
	prefs    prefs.Store
}

// New wires the full handler chain in priority order.
func New(pipe *pipeline.Pipeline, store prefs.Store, audioCache *cache.AudioCache, opts Options) *Router {
	return &Router{
		prefs: store,
		handlers: []Handler{
			&askHandler{pipe: pipe, opts: opts},
			&setLanguageHandler{prefs: store},
			&repeatHandler{cache: audioCache},
			&launchHandler{},
			&helpHandler{},
			&cancelHandler{},
			&sessionEndedHandler{},
			&unhandledHandler{},
		},
	}
}

// Route resolves the caller's identity and language preference, then runs the
// first handler whose predicate matches. A handler error becomes a generic
// spoken error; partial success is never presented as success.
func (r *Router) Route(ctx context.Context, env *alexa.RequestEnvelope) alexa.ResponseEnvelope {
	s := &Session{
		Envelope: env,
		Identity: env.DeviceID(),
		Language: r.resolveLanguage(ctx, env.DeviceID()),
	}

	for _, h := range r.handlers {
		if !h.CanHandle(s) {
			continue
		}
		resp, err := h.Handle(ctx, s)
		if err != nil {
			logger.ErrorCF("router", "Handler failed", map[string]any{
				"type":  env.Request.Type,
				"error": err.Error(),
			})
			return alexa.NewResponseBuilder().
				Speak(msgError).
				Reprompt(msgWhatDoYouWant).
				Build()
		}
		return resp
	}

	// Unreachable: the catch-all handler matches everything.
	return alexa.NewResponseBuilder().Speak(msgUnhandled).Reprompt(msgUnhandled).Build()
}

// resolveLanguage loads the persisted preference and applies the fallback for
// absent, unknown or unreadable preferences. A read fault downgrades to the
// fallback so informational requests keep working.
func (r *Router) resolveLanguage(ctx context.Context, identity string) string {
	code, ok, err := r.prefs.Get(ctx, identity)
	if err != nil {
		logger.WarnCF("router", "Preference lookup failed, using fallback", map[string]any{
			"error": err.Error(),
		})
		return catalog.FallbackLanguage
	}
	if !ok || !catalog.Supported(code) {
		return catalog.FallbackLanguage
	}
	return code
}

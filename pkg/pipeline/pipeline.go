// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package pipeline runs the translate, synthesize, store sequence for one
// phrase. Steps are strictly sequential; the first failure aborts the run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/lingoteach/lingoteach/pkg/cache"
	"github.com/lingoteach/lingoteach/pkg/catalog"
	"github.com/lingoteach/lingoteach/pkg/gateway"
	"github.com/lingoteach/lingoteach/pkg/logger"
)

// ssmlTemplate speaks the translated phrase twice: once at normal rate and
// once slowed down, both with dynamic range compression.
const ssmlTemplate = `<speak><amazon:effect name="drc"><p>%s</p></amazon:effect><prosody rate="slow"><amazon:effect name="drc"><p>%s</p></amazon:effect></prosody></speak>`

// Playback describes a completed run: everything the response needs.
type Playback struct {
	Phrase       string
	Translation  string
	LanguageName string
	AudioURL     string
}

// Pipeline chains the translator, the speaker and the audio cache.
type Pipeline struct {
	translator gateway.Translator
	speaker    gateway.Speaker
	cache      *cache.AudioCache
}

func New(translator gateway.Translator, speaker gateway.Speaker, audioCache *cache.AudioCache) *Pipeline {
	return &Pipeline{translator: translator, speaker: speaker, cache: audioCache}
}

// Run translates phrase into languageCode, synthesizes the result and stores
// the audio under identity's cache key, overwriting any previous run.
// An unsupported languageCode falls back to the default language.
// There are no retries and no rollback of completed steps.
func (p *Pipeline) Run(ctx context.Context, phrase, languageCode, identity string) (*Playback, error) {
	lang, ok := catalog.Lookup(languageCode)
	if !ok {
		lang, _ = catalog.Lookup(catalog.FallbackLanguage)
	}

	translated, err := p.translator.Translate(ctx, phrase, catalog.SourceLanguage, lang.Code)
	if err != nil {
		return nil, &TranslationError{Err: err}
	}

	ssml := fmt.Sprintf(ssmlTemplate, translated, translated)
	audio, err := p.speaker.Synthesize(ctx, ssml, lang.Voice)
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}

	if err := p.cache.Write(ctx, identity, audio); err != nil {
		return nil, &StorageError{Err: err}
	}

	logger.InfoCF("pipeline", "Phrase translated and cached", map[string]any{
		"language":   lang.Code,
		"size_bytes": len(audio),
	})

	return &Playback{
		Phrase:       phrase,
		Translation:  translated,
		LanguageName: lang.Name,
		AudioURL:     p.cache.URL(identity),
	}, nil
}

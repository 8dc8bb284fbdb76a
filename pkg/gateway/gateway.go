// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package gateway defines the external capability interfaces the skill
// depends on and their production implementations. Implementations are
// constructed at startup and injected; the core never builds its own clients.
package gateway

import "context"

// Translator converts text between languages.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Speaker renders SSML markup into an audio byte stream.
type Speaker interface {
	Synthesize(ctx context.Context, ssml, voice string) ([]byte, error)
}

// ObjectStore is keyed blob storage with existence checks.
// Exists distinguishes a missing object (false, nil) from transport faults.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte) error
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns the public address an object will be served from.
	URL(key string) string
}

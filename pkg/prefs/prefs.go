// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package prefs persists the per-device language preference.
package prefs

import "context"

// Store reads and writes one language code per device identity.
//
// Get returns ok=false for an identity that never set a preference; callers
// decide what to fall back to. Set must be durable before it returns.
type Store interface {
	Get(ctx context.Context, identity string) (code string, ok bool, err error)
	Set(ctx context.Context, identity, code string) error
}

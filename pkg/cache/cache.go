// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package cache keeps the most recent synthesized audio per device.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/lingoteach/lingoteach/pkg/gateway"
)

// objectSuffix completes the storage key derived from a device identity.
const objectSuffix = "/speech.mp3"

// Key maps a device identity to its fixed-length storage prefix.
// The same identity always yields the same key.
func Key(identity string) string {
	sum := md5.Sum([]byte(identity))
	return hex.EncodeToString(sum[:])
}

func objectKey(identity string) string {
	return Key(identity) + objectSuffix
}

// AudioCache stores at most one audio object per device identity.
// Every write overwrites the previous object under the same key.
type AudioCache struct {
	store gateway.ObjectStore
}

func New(store gateway.ObjectStore) *AudioCache {
	return &AudioCache{store: store}
}

// Write stores audio for identity, replacing any previous object.
func (c *AudioCache) Write(ctx context.Context, identity string, audio []byte) error {
	if err := c.store.Put(ctx, objectKey(identity), audio); err != nil {
		return fmt.Errorf("write cached audio: %w", err)
	}
	return nil
}

// Exists reports whether cached audio is present for identity.
// A missing object is not an error.
func (c *AudioCache) Exists(ctx context.Context, identity string) (bool, error) {
	ok, err := c.store.Exists(ctx, objectKey(identity))
	if err != nil {
		return false, fmt.Errorf("check cached audio: %w", err)
	}
	return ok, nil
}

// URL returns the public playback address for identity's cached audio.
func (c *AudioCache) URL(identity string) string {
	return c.store.URL(objectKey(identity))
}

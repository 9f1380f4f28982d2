// Package kv provides the synchronous key-value primitive the tracker
// persists its JSON documents into.
package kv

import (
	"errors"
	"fmt"
)

var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store holds whole documents under string keys. Implementations are not
// required to be safe for concurrent writers.
type Store interface {
	// Get reports ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Remove is a no-op for absent keys.
	Remove(key string) error
	Close() error
}

func entrySize(key, value string) int64 {
	return int64(len(key) + len(value))
}

// checkQuota reports whether replacing a value of size previous with one of
// size next keeps used bytes within quota. A quota <= 0 means unlimited.
func checkQuota(quota, used, previous, next int64) error {
	if quota <= 0 {
		return nil
	}
	if used-previous+next > quota {
		return fmt.Errorf("%w: %d bytes used of %d, write needs %d", ErrQuotaExceeded, used-previous, quota, next)
	}
	return nil
}

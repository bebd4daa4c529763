// Package cache defines the client-side options cache: a keyed table of
// dropdown data written by fetch operations and read by the filter resolvers.
// The store is always passed in as a dependency so tests can substitute an
// isolated instance per case.
package cache

import "strings"

// Key identifies one cache entry: an ordered sequence of primitive segments,
// e.g. {"faculties", "<universityID>"}. Two keys are equal when their segments
// are equal pairwise.
type Key []string

func NewKey(segments ...string) Key {
	return Key(segments)
}

// Append returns a new Key with the given segments added; the receiver is not modified.
func (k Key) Append(segments ...string) Key {
	out := make(Key, 0, len(k)+len(segments))
	out = append(out, k...)
	out = append(out, segments...)
	return out
}

func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether `prefix` is a leading sub-sequence of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `/`, `\/`)

// String returns a canonical encoding of the key, usable as a map identity.
func (k Key) String() string {
	if len(k) == 0 {
		return ""
	}
	escaped := make([]string, len(k))
	for i, seg := range k {
		escaped[i] = keyEscaper.Replace(seg)
	}
	return strings.Join(escaped, "/")
}

// Store is the cache table contract. Implementations must be safe for
// concurrent use; writes follow last-write-wins semantics, there is no
// transactional discipline and no TTL.
type Store interface {
	Get(key Key) (interface{}, bool)
	Set(key Key, entry interface{})
	Remove(key Key)
	Keys() []Key
	Clear()
}

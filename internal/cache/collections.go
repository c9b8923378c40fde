package cache

import (
	"encoding/json"
	"fmt"
)

// entity is anything validated at the deserialization boundary.
type entity interface {
	Validate() error
}

// LoadCollection reads and decodes the collection stored under key.
//
// A missing key yields nil. A value that fails to decode, or contains any
// element that fails schema validation, is malformed persisted state: the
// key is cleared and nil is returned. Corrupt local data degrades to an
// empty default, never to an error or a crash.
func LoadCollection[T entity](s *Store, key string) ([]T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, resetKey(s, key)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, resetKey(s, key)
		}
	}
	return items, nil
}

// SaveCollection encodes items and stores them under key, replacing the
// previous snapshot wholesale.
func SaveCollection[T entity](s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}

// LoadValue reads and decodes a single value stored under key, with the same
// malformed-state recovery as LoadCollection. The second return is false
// when the key is absent or its value was discarded.
func LoadValue[T entity](s *Store, key string) (T, bool, error) {
	var zero T

	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return zero, false, err
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return zero, false, resetKey(s, key)
	}
	if err := value.Validate(); err != nil {
		return zero, false, resetKey(s, key)
	}
	return value, true, nil
}

// SaveValue encodes a single value and stores it under key.
func SaveValue[T entity](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(key, raw)
}

// resetKey clears a key holding malformed state. Only a storage-level
// failure propagates; the malformed content itself is silently dropped.
func resetKey(s *Store, key string) error {
	return s.Remove(key)
}

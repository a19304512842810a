// Package kv defines the durable key-value slots the user state is persisted to.
package kv

import "errors"

var ErrNotFound = errors.New("key not found")

// Store is a flat key-value byte store. Get returns ErrNotFound for absent keys;
// Delete of an absent key is not an error.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Lister is implemented by stores that can enumerate their keys, in ascending
// order.
type Lister interface {
	Keys() ([]string, error)
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"bennypowers.dev/bruecke/token"
)

// Sentinel errors for registry lookups.
var (
	// ErrUnknownTransform indicates a transform name that was never registered.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownGroup indicates a transform group name that was never registered.
	ErrUnknownGroup = errors.New("unknown transform group")
)

// Registry holds named transforms and transform groups.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
	groups     map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]Transform),
		groups:     make(map[string][]string),
	}
}

// NewDefaultRegistry creates a registry with the built-in transforms and groups.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// Register adds t, replacing any transform registered under the same name.
func (r *Registry) Register(t Transform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transforms[t.Name()] = t
}

// RegisterGroup registers a named pipeline of transforms, applied in order.
// Every member must already be registered.
func (r *Registry) RegisterGroup(name string, transforms ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tn := range transforms {
		if _, ok := r.transforms[tn]; !ok {
			return fmt.Errorf("group %s: %w: %s", name, ErrUnknownTransform, tn)
		}
	}
	r.groups[name] = slices.Clone(transforms)
	return nil
}

// Get returns the transform registered under name.
func (r *Registry) Get(name string) (Transform, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transforms[name]
	return t, ok
}

// Group returns the transforms of the named group in application order.
func (r *Registry) Group(name string) ([]Transform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names, ok := r.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
	}
	result := make([]Transform, 0, len(names))
	for _, tn := range names {
		result = append(result, r.transforms[tn])
	}
	return result, nil
}

// GroupNames returns the registered group names, sorted.
func (r *Registry) GroupNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyGroup applies the named group to every token. For each token the
// group's transforms run in order, skipping those that do not match.
func (r *Registry) ApplyGroup(name string, tokens []*token.Token, opts Options) error {
	transforms, err := r.Group(name)
	if err != nil {
		return err
	}
	Apply(transforms, tokens, opts)
	return nil
}

// Apply runs transforms over tokens in order.
func Apply(transforms []Transform, tokens []*token.Token, opts Options) {
	for _, t := range tokens {
		for _, tr := range transforms {
			if tr.Matches(t) {
				tr.Apply(t, opts)
			}
		}
	}
}

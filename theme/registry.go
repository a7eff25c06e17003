package theme

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Key is the registry key of a theme for a block type.
func Key(blockType, name string) string {
	return blockType + "/" + name
}

// SplitKey is the inverse of Key.
func SplitKey(key string) (blockType, name string, err error) {
	i := strings.LastIndexByte(key, '/')
	if i <= 0 || i == len(key)-1 {
		return "", "", fmt.Errorf("malformed theme key %q", key)
	}
	return key[:i], key[i+1:], nil
}

// Registry is a store for themes, keyed by Key(blockType, name).
// Implementations are expected to do I/O and must be safe for concurrent use.
type Registry interface {
	Get(ctx context.Context, key string) (Theme, bool, error)
	Put(ctx context.Context, key string, t Theme) error
	Delete(ctx context.Context, key string) error
	// List returns the names of all themes for a block type, sorted.
	List(ctx context.Context, blockType string) ([]string, error)
}

// MemoryRegistry is a Registry holding themes in memory. The zero value is
// ready to use.
type MemoryRegistry struct {
	mx     sync.RWMutex
	themes map[string]Theme
}

var _ Registry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates a registry pre-filled with themes for a block
// type.
func NewMemoryRegistry(blockType string, themes ...Theme) *MemoryRegistry {
	reg := &MemoryRegistry{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		reg.themes[Key(blockType, t.Name)] = t.Clone()
	}
	return reg
}

// Get returns a copy of the theme stored under key.
func (reg *MemoryRegistry) Get(ctx context.Context, key string) (Theme, bool, error) {
	if err := ctx.Err(); err != nil {
		return Theme{}, false, err
	}
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	t, ok := reg.themes[key]
	if !ok {
		return Theme{}, false, nil
	}
	return t.Clone(), true, nil
}

// Put stores a copy of t under key.
func (reg *MemoryRegistry) Put(ctx context.Context, key string, t Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := SplitKey(key); err != nil {
		return err
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()
	if reg.themes == nil {
		reg.themes = map[string]Theme{}
	}
	reg.themes[key] = t.Clone()
	tracer().Debugf("stored theme %s", key)
	return nil
}

// Delete removes the theme stored under key. Deleting a missing theme is
// not an error.
func (reg *MemoryRegistry) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()
	delete(reg.themes, key)
	return nil
}

// List returns the sorted names of the themes for blockType.
func (reg *MemoryRegistry) List(ctx context.Context, blockType string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	var names []string
	for key := range reg.themes {
		if bt, name, err := SplitKey(key); err == nil && bt == blockType {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

package graphics

import (
	"fmt"
	"strings"

	"sketchgl/internal/profiling"
)

// KeySeparator joins the vertex and fragment ids of a shader key
const KeySeparator = "|"

var keyEscaper = strings.NewReplacer(`\`, `\\`, KeySeparator, `\`+KeySeparator)

// ShaderKey builds the cache key for a shader pair. Separators inside an id
// are escaped so distinct pairs never share a key.
func ShaderKey(vertID, fragID string) string {
	return keyEscaper.Replace(vertID) + KeySeparator + keyEscaper.Replace(fragID)
}

type cacheEntry struct {
	program *Program
	err     error
}

// ShaderCache lazily compiles shader pairs and keeps them for the lifetime
// of the context. Failed pairs are remembered too, so each pair is compiled
// at most once.
type ShaderCache struct {
	driver   Driver
	library  *ShaderLibrary
	entries  map[string]cacheEntry
	compiles int

	// OnCreate runs once after each successful compile
	OnCreate func(p *Program)
}

// NewShaderCache returns an empty cache compiling against d
func NewShaderCache(d Driver, lib *ShaderLibrary) *ShaderCache {
	return &ShaderCache{
		driver:  d,
		library: lib,
		entries: make(map[string]cacheEntry),
	}
}

// Resolve returns the program for a shader pair, compiling it on first use,
// and binds it as the active program. On failure the program is nil and the
// same error is returned on every later call for that pair.
func (c *ShaderCache) Resolve(vertID, fragID string, immediate bool) (*Program, error) {
	key := ShaderKey(vertID, fragID)
	if e, ok := c.entries[key]; ok {
		if e.err != nil {
			return nil, e.err
		}
		Logger().Debug("shader cache hit", "key", key)
		e.program.Use()
		return e.program, nil
	}

	Logger().Debug("shader cache miss", "key", key, "immediate", immediate)
	p, err := c.compile(vertID, fragID, immediate)
	c.entries[key] = cacheEntry{program: p, err: err}
	if err != nil {
		Logger().Warn("shader unavailable", "key", key, "error", err)
		return nil, err
	}
	if c.OnCreate != nil {
		c.OnCreate(p)
	}
	p.Use()
	return p, nil
}

func (c *ShaderCache) compile(vertID, fragID string, immediate bool) (*Program, error) {
	defer profiling.Track("shader.compile")()
	c.compiles++

	vertSrc, err := c.library.Source(vertID)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragSrc, err := c.library.Source(fragID)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	return newProgram(c.driver, vertID, fragID, vertSrc, fragSrc, immediate)
}

// Lookup returns a previously resolved entry by key without binding it.
// ok is false when the key was never resolved.
func (c *ShaderCache) Lookup(key string) (p *Program, ok bool, err error) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return e.program, true, e.err
}

// Contains reports whether a key has been resolved, successfully or not
func (c *ShaderCache) Contains(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached entries
func (c *ShaderCache) Len() int { return len(c.entries) }

// Compiles returns how many compile attempts the cache has made
func (c *ShaderCache) Compiles() int { return c.compiles }

// Dispose deletes every linked program and empties the cache
func (c *ShaderCache) Dispose() {
	for key, e := range c.entries {
		if e.program != nil {
			c.driver.DeleteProgram(e.program.ID)
		}
		delete(c.entries, key)
	}
}

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Attribute names accepted by Attributes.Set and Attributes.Merge.
const (
	AttrAlpha                 = "alpha"
	AttrDepth                 = "depth"
	AttrStencil               = "stencil"
	AttrAntialias             = "antialias"
	AttrPremultipliedAlpha    = "premultipliedAlpha"
	AttrPreserveDrawingBuffer = "preserveDrawingBuffer"
)

// Attributes describes the drawing buffer requested from the graphics context.
// Changing any of them requires the context to be rebuilt.
type Attributes struct {
	// Alpha requests an alpha channel in the drawing buffer.
	Alpha bool
	// Depth requests a depth buffer of at least 16 bits.
	Depth bool
	// Stencil requests a stencil buffer of at least 8 bits.
	Stencil bool
	// Antialias requests a multisampled drawing buffer.
	Antialias bool
	// PremultipliedAlpha tells the compositor colors are premultiplied.
	PremultipliedAlpha bool
	// PreserveDrawingBuffer keeps buffer contents until cleared or overwritten.
	// Pixel read-back only works when it is set.
	PreserveDrawingBuffer bool
}

// DefaultAttributes returns the attributes used when none are supplied.
func DefaultAttributes() Attributes {
	return Attributes{
		Alpha:                 true,
		Depth:                 true,
		Stencil:               true,
		Antialias:             false,
		PremultipliedAlpha:    false,
		PreserveDrawingBuffer: true,
	}
}

// UnknownAttributeError is returned when an attribute name is not recognised.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown context attribute %q (known: %s)", e.Name, strings.Join(Names(), ", "))
}

func (a *Attributes) field(name string) *bool {
	switch name {
	case AttrAlpha:
		return &a.Alpha
	case AttrDepth:
		return &a.Depth
	case AttrStencil:
		return &a.Stencil
	case AttrAntialias:
		return &a.Antialias
	case AttrPremultipliedAlpha:
		return &a.PremultipliedAlpha
	case AttrPreserveDrawingBuffer:
		return &a.PreserveDrawingBuffer
	}
	return nil
}

// Set assigns a single attribute by name.
func (a *Attributes) Set(name string, value bool) error {
	f := a.field(name)
	if f == nil {
		return &UnknownAttributeError{Name: name}
	}
	*f = value
	return nil
}

// Get returns the value of a named attribute.
func (a Attributes) Get(name string) (bool, error) {
	f := a.field(name)
	if f == nil {
		return false, &UnknownAttributeError{Name: name}
	}
	return *f, nil
}

// Merge returns a copy of a with every pair in values applied.
// Nothing is applied if any name is unknown.
func (a Attributes) Merge(values map[string]bool) (Attributes, error) {
	out := a
	for _, name := range sortedKeys(values) {
		if err := out.Set(name, values[name]); err != nil {
			return a, err
		}
	}
	return out, nil
}

// Map returns the attributes as name/value pairs.
func (a Attributes) Map() map[string]bool {
	return map[string]bool{
		AttrAlpha:                 a.Alpha,
		AttrDepth:                 a.Depth,
		AttrStencil:               a.Stencil,
		AttrAntialias:             a.Antialias,
		AttrPremultipliedAlpha:    a.PremultipliedAlpha,
		AttrPreserveDrawingBuffer: a.PreserveDrawingBuffer,
	}
}

// Names lists every attribute name in sorted order.
func Names() []string {
	return sortedKeys(DefaultAttributes().Map())
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

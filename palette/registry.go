package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var ErrUnknownPalette = errors.New("unknown palette")

// node is one segment of a dotted palette path, e.g. "colorbrewer" or
// "colorbrewer.sequential".
type node struct {
	children map[string]*node
	palettes map[string]*Palette
}

func newNode() *node {
	return &node{children: map[string]*node{}, palettes: map[string]*Palette{}}
}

var (
	registryMu sync.RWMutex
	registry   = newNode()
)

// Register adds a palette under a dotted identifier such as
// "colorbrewer.sequential.Blues_9". Intermediate path segments are
// created as needed. An existing palette with the same identifier is
// replaced.
func Register(id string, kind Kind, hex ...string) error {
	segs := strings.Split(id, ".")
	if len(segs) < 2 || slices.Contains(segs, "") {
		return fmt.Errorf("invalid palette identifier %q", id)
	}
	name := segs[len(segs)-1]
	if strings.HasSuffix(name, "_r") {
		return fmt.Errorf("palette identifier %q: suffix _r is reserved for reversed palettes", id)
	}
	p, err := FromHex(name, kind, hex...)
	if err != nil {
		return err
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	n := registry
	for _, s := range segs[:len(segs)-1] {
		child, ok := n.children[s]
		if !ok {
			child = newNode()
			n.children[s] = child
		}
		n = child
	}
	n.palettes[name] = p
	return nil
}

func mustRegister(id string, kind Kind, hex ...string) {
	if err := Register(id, kind, hex...); err != nil {
		panic(err)
	}
}

// Resolve looks up a palette by its dotted identifier. A name ending in
// "_r" resolves to the reversed form of the base palette. Errors wrap
// ErrUnknownPalette and name the segment that failed to resolve.
func Resolve(id string) (*Palette, error) {
	segs := strings.Split(id, ".")
	if len(segs) < 2 {
		return nil, fmt.Errorf("%w: %q is not a dotted palette path", ErrUnknownPalette, id)
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	n := registry
	for i, s := range segs[:len(segs)-1] {
		child, ok := n.children[s]
		if !ok {
			return nil, fmt.Errorf("%w: no palette module %q in %q",
				ErrUnknownPalette, strings.Join(segs[:i+1], "."), id)
		}
		n = child
	}
	name := segs[len(segs)-1]
	if p, ok := n.palettes[name]; ok {
		tracer().Debugf("resolved palette %s (%d colors)", id, p.Len())
		return p, nil
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if p, ok := n.palettes[base]; ok {
			tracer().Debugf("resolved reversed palette %s (%d colors)", id, p.Len())
			return p.Reversed(), nil
		}
	}
	return nil, fmt.Errorf("%w: no palette named %q in module %q",
		ErrUnknownPalette, name, strings.Join(segs[:len(segs)-1], "."))
}

// Names lists all registered palette identifiers in sorted order.
// Reversed variants are not listed.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var names []string
	var walk func(prefix string, n *node)
	walk = func(prefix string, n *node) {
		for name := range n.palettes {
			names = append(names, prefix+name)
		}
		for seg, child := range n.children {
			walk(prefix+seg+".", child)
		}
	}
	walk("", registry)
	slices.Sort(names)
	return names
}

// Package core: batch construction from connection rows
//
// Build validates the whole input first, so a bad row never leaves a
// half-populated graph behind, then freezes the result.

package core

import "fmt"

// Build constructs and freezes a Graph from conns.
//
// Every connection is validated before the graph is touched; the first
// invalid row aborts the whole build and no graph is returned.
//
// Errors are wrapped with the offending row index:
//
//	core: build row 3: core: negative connection weight: A–B weight=-1
//
// Complexity: O(len(conns) · max deg).
func Build(conns []Connection, opts ...GraphOption) (*Graph, error) {
	for i, c := range conns {
		if err := validateConnection(c); err != nil {
			return nil, fmt.Errorf("core: build row %d: %w", i, err)
		}
	}

	g := NewGraph(opts...)
	for i, c := range conns {
		if err := g.AddConnection(c.From, c.To, c.Weight); err != nil {
			// Unreachable after validation unless a custom container misbehaves.
			return nil, fmt.Errorf("core: build row %d: %w", i, err)
		}
	}
	g.Freeze()

	return g, nil
}

// validateConnection applies the AddConnection preconditions without mutating anything.
func validateConnection(c Connection) error {
	if c.From == "" || c.To == "" {
		return ErrEmptyCityID
	}
	if c.Weight < 0 {
		return fmt.Errorf("%w: %s–%s weight=%d", ErrNegativeWeight, c.From, c.To, c.Weight)
	}

	return nil
}

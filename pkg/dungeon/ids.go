package dungeon

import "sync/atomic"

// IDSource hands out room identities. Identities from one source are never
// reused, so builders sharing a source produce graphs with disjoint room ids.
// Safe for concurrent use.
type IDSource struct {
	next atomic.Int64
}

// NewIDSource creates a source whose first identity is 0
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns a fresh identity
func (s *IDSource) Next() int {
	return int(s.next.Add(1) - 1)
}

// DefaultIDSource is used by builders created without an explicit source.
var DefaultIDSource = NewIDSource()

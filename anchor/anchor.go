// Package anchor produces document-wide unique heading identifiers.
package anchor

import (
	"strconv"
	"sync"

	"github.com/gosimple/slug"
)

// fallback is used for headings which do not produce any slug characters.
const fallback = "section"

// Anchorizer turns arbitrary heading text into URL fragment safe slugs never
// returning the same slug twice. It is safe for concurrent use, a single
// instance is meant to be shared by everything working on one document.
type Anchorizer struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// New returns empty anchorizer.
func New() *Anchorizer {
	return &Anchorizer{seen: make(map[string]struct{})}
}

// Anchorize returns unique slug for text. Repeated texts get numeric suffix:
// "intro", "intro-1", "intro-2", ...
func (a *Anchorizer) Anchorize(text string) string {
	base := slug.Make(text)
	if base == "" {
		base = fallback
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id := base
	for n := 1; ; n++ {
		if _, exists := a.seen[id]; !exists {
			break
		}
		id = base + "-" + strconv.Itoa(n)
	}
	a.seen[id] = struct{}{}
	return id
}

// Reset forgets all issued slugs.
func (a *Anchorizer) Reset() {
	a.mu.Lock()
	clear(a.seen)
	a.mu.Unlock()
}

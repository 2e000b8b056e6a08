// Package controller owns the per-page view state of the console. Every
// controller follows the same cycle: build the filter query, fetch the list
// from the admin API, replace its snapshot wholesale, and hand the view to
// the renderer. Mutations never touch the snapshot directly; the caller
// re-runs the fetch afterwards so the view always reflects the server's
// post-mutation state.
package controller

import (
	"sync"
)

// Pagination is the envelope the admin API returns alongside every list.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

func (p Pagination) HasPrev() bool {
	return p.Current > 1
}

func (p Pagination) HasNext() bool {
	return p.Current < p.Pages
}

// fetchGuard orders concurrent fetches within one controller. Each fetch
// takes a sequence number before it starts; a completed fetch may only be
// applied if nothing newer has been applied since. A response arriving after
// a later-triggered fetch is discarded instead of overwriting newer state.
type fetchGuard struct {
	mu      sync.Mutex
	started uint64
	applied uint64
}

func (g *fetchGuard) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.started++
	return g.started
}

func (g *fetchGuard) tryApply(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.applied {
		return false
	}
	g.applied = seq
	return true
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

package debounce

import (
	"sync"
	"time"

	"github.com/callebjorkell/keybridge/internal/button"
)

// DefaultWindow is the chattering window of the mechanical buttons. Edges
// arriving closer together than this are collapsed into a single press.
const DefaultWindow = 300 * time.Millisecond

// Gate suppresses the spurious extra edges a mechanical switch produces
// around a real press. Each button has its own timing cell, so a chattering
// button can never mask presses on any of the others.
type Gate struct {
	window time.Duration
	cells  [button.Count]cell
}

type cell struct {
	mu   sync.Mutex
	last time.Time
}

func New(window time.Duration) *Gate {
	return &Gate{window: window}
}

// Accept reports whether a press observed at now is a real press rather than
// a bounce. The very first press on a button is always accepted, and a press
// exactly one window after the last accepted one is accepted; anything
// strictly inside the window is rejected and leaves the cell untouched. The
// read-compare-update runs under the cell lock, so two concurrent edges on
// the same button can never both pass.
func (g *Gate) Accept(b button.Button, now time.Time) bool {
	c := &g.cells[b]
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.last.IsZero() && now.Sub(c.last) < g.window {
		return false
	}
	c.last = now
	return true
}

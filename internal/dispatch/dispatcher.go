package dispatch

import (
	"time"

	"github.com/callebjorkell/keybridge/internal/button"
	"github.com/callebjorkell/keybridge/internal/debounce"
	"github.com/callebjorkell/keybridge/internal/uinput"
	log "github.com/sirupsen/logrus"
)

// Dispatcher turns accepted button presses into key event triples on the
// sink. A failed write aborts the rest of that press's triple; the press is
// lost and never retried, since a human can simply press again.
type Dispatcher struct {
	codes [button.Count]int
	gate  *debounce.Gate
	sink  uinput.Sink
}

func New(codes [button.Count]int, gate *debounce.Gate, sink uinput.Sink) *Dispatcher {
	return &Dispatcher{codes: codes, gate: gate, sink: sink}
}

// OnPress handles one falling edge for the given button. Unbound buttons
// (code 0) and bounces are dropped. Never terminates the process; safe to
// call from concurrent pin watchers.
func (d *Dispatcher) OnPress(b button.Button) {
	if b < 0 || int(b) >= len(d.codes) {
		return
	}
	code := d.codes[b]
	if code == 0 {
		log.Debugf("Button %v is unbound, ignoring", b)
		return
	}
	if !d.gate.Accept(b, time.Now()) {
		log.Debugf("Bounce on button %v, ignoring", b)
		return
	}

	log.Debugf("Button %v pressed, sending key %d", b, code)
	triple := []uinput.Event{uinput.KeyDown(code), uinput.KeyUp(code), uinput.SynReport()}
	for _, ev := range triple {
		if err := d.sink.WriteEvent(ev); err != nil {
			log.Warnf("Unable to write key event for button %v: %v", b, err)
			return
		}
	}
}

package dispatch

import (
	"fmt"
	"testing"

	"github.com/callebjorkell/keybridge/internal/button"
	"github.com/callebjorkell/keybridge/internal/debounce"
	"github.com/callebjorkell/keybridge/internal/uinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderSink records written events and can be told to start failing on
// the nth write (1-based). failOn of 0 never fails.
type recorderSink struct {
	events []uinput.Event
	failOn int
}

func (r *recorderSink) WriteEvent(ev uinput.Event) error {
	if r.failOn > 0 && len(r.events)+1 >= r.failOn {
		return fmt.Errorf("broken sink")
	}
	r.events = append(r.events, ev)
	return nil
}

var testCodes = [button.Count]int{30, 48, 45, 46}

func TestPressEmitsTriple(t *testing.T) {
	sink := &recorderSink{}
	d := New(testCodes, debounce.New(debounce.DefaultWindow), sink)

	d.OnPress(button.A)

	require.Len(t, sink.events, 3)
	assert.Equal(t, uinput.Event{Type: uinput.EvKey, Code: 30, Value: 1}, sink.events[0])
	assert.Equal(t, uinput.Event{Type: uinput.EvKey, Code: 30, Value: 0}, sink.events[1])
	assert.Equal(t, uinput.Event{Type: uinput.EvSyn, Code: 0, Value: 0}, sink.events[2])
}

func TestBouncedPressEmitsNothing(t *testing.T) {
	sink := &recorderSink{}
	d := New(testCodes, debounce.New(debounce.DefaultWindow), sink)

	d.OnPress(button.A)
	d.OnPress(button.A) // immediately again, well inside the window

	assert.Len(t, sink.events, 3)
}

func TestUnboundButtonIsSilent(t *testing.T) {
	codes := testCodes
	codes[button.B] = 0
	sink := &recorderSink{}
	d := New(codes, debounce.New(debounce.DefaultWindow), sink)

	d.OnPress(button.B)
	d.OnPress(button.B)

	assert.Empty(t, sink.events)
}

func TestEachButtonUsesItsOwnCode(t *testing.T) {
	sink := &recorderSink{}
	d := New(testCodes, debounce.New(0), sink)

	d.OnPress(button.A)
	d.OnPress(button.Y)

	require.Len(t, sink.events, 6)
	assert.Equal(t, uint16(30), sink.events[0].Code)
	assert.Equal(t, uint16(46), sink.events[3].Code)
}

func TestFailedPressWriteAbortsWholeTriple(t *testing.T) {
	sink := &recorderSink{failOn: 1}
	d := New(testCodes, debounce.New(0), sink)

	d.OnPress(button.A)

	// no release or sync without a press
	assert.Empty(t, sink.events)
}

func TestFailedSyncWriteAbortsRemainder(t *testing.T) {
	sink := &recorderSink{failOn: 3}
	d := New(testCodes, debounce.New(0), sink)

	d.OnPress(button.A)

	require.Len(t, sink.events, 2)
	assert.Equal(t, int32(1), sink.events[0].Value)
	assert.Equal(t, int32(0), sink.events[1].Value)

	// a later press goes through untouched
	sink.failOn = 0
	d.OnPress(button.A)
	assert.Len(t, sink.events, 5)
}

func TestOutOfRangeButtonIsIgnored(t *testing.T) {
	sink := &recorderSink{}
	d := New(testCodes, debounce.New(0), sink)

	d.OnPress(button.Button(-1))
	d.OnPress(button.Button(button.Count))

	assert.Empty(t, sink.events)
}

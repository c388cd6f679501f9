package uinput

// Event types from the input subsystem.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
)

// Event is one raw record for the input subsystem.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Sink accepts raw input events.
type Sink interface {
	WriteEvent(Event) error
}

// KeyDown is the record for pressing the key with the given code.
func KeyDown(code int) Event {
	return Event{Type: EvKey, Code: uint16(code), Value: 1}
}

// KeyUp is the record for releasing the key with the given code.
func KeyUp(code int) Event {
	return Event{Type: EvKey, Code: uint16(code), Value: 0}
}

// SynReport marks the end of one logical key press.
func SynReport() Event {
	return Event{Type: EvSyn}
}

package button

import "fmt"

// Count is the number of buttons on the board.
const Count = 4

// Button identifies one of the four front panel buttons.
type Button int

const (
	A Button = iota
	B
	X
	Y
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

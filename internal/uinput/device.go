//go:build linux

package uinput

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

const devicePath = "/dev/uinput"

// ioctl requests from linux/uinput.h.
const (
	uiSetEvBit   = 0x40045564
	uiSetKeyBit  = 0x40045565
	uiDevCreate  = 0x00005501
	uiDevDestroy = 0x00005502
)

const busUSB = 0x03

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name         [80]byte
	BusType      uint16
	Vendor       uint16
	Product      uint16
	Version      uint16
	FFEffectsMax uint32
	AbsMax       [64]int32
	AbsMin       [64]int32
	AbsFuzz      [64]int32
	AbsFlat      [64]int32
}

// inputEvent mirrors struct input_event. The timeval makes the size
// architecture dependent, so it is written out with unsafe rather than a
// hardcoded layout.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Keyboard is a virtual keyboard backed by /dev/uinput. All writes
// serialize through a single lock so the event triple of one press never
// interleaves with another's.
type Keyboard struct {
	mu sync.Mutex
	f  *os.File
}

// Open creates the virtual keyboard and registers the given key codes with
// it. A code of zero leaves that slot unregistered. Failing to open the
// device means no key can ever be delivered, so callers should treat an
// error as fatal.
func Open(name string, codes []int) (*Keyboard, error) {
	f, err := os.OpenFile(devicePath, os.O_WRONLY, 0660)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", devicePath, err)
	}

	k := &Keyboard{f: f}
	if err := k.setup(name, codes); err != nil {
		f.Close()
		return nil, err
	}

	log.Debugf("Created virtual keyboard %q with key codes %v", name, codes)
	return k, nil
}

func (k *Keyboard) setup(name string, codes []int) error {
	fd := int(k.f.Fd())

	if err := unix.IoctlSetInt(fd, uiSetEvBit, int(EvKey)); err != nil {
		return fmt.Errorf("enable key events: %w", err)
	}
	for _, code := range codes {
		if code == 0 {
			continue
		}
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, code); err != nil {
			return fmt.Errorf("register key code %d: %w", code, err)
		}
	}

	var dev userDev
	copy(dev.Name[:], name)
	dev.BusType = busUSB
	dev.Vendor = 0x01
	dev.Product = 0x01
	dev.Version = 0x01

	buf := (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))
	if _, err := k.f.Write(buf[:]); err != nil {
		return fmt.Errorf("write device setup: %w", err)
	}
	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

// WriteEvent writes one raw event record to the device.
func (k *Keyboard) WriteEvent(ev Event) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.f == nil {
		return fmt.Errorf("virtual keyboard is closed")
	}

	raw := inputEvent{Type: ev.Type, Code: ev.Code, Value: ev.Value}
	buf := (*[unsafe.Sizeof(raw)]byte)(unsafe.Pointer(&raw))
	if _, err := k.f.Write(buf[:]); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Close destroys the virtual device and releases the descriptor. Safe to
// call more than once.
func (k *Keyboard) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.f == nil {
		return nil
	}
	if err := unix.IoctlSetInt(int(k.f.Fd()), uiDevDestroy, 0); err != nil {
		log.Warnf("Unable to destroy the virtual keyboard: %v", err)
	}
	err := k.f.Close()
	k.f = nil
	return err
}

//go:build !linux

package uinput

import (
	log "github.com/sirupsen/logrus"
)

// Keyboard logs events instead of injecting them. uinput only exists on
// Linux; this keeps the bridge runnable on a development machine.
type Keyboard struct{}

func Open(name string, codes []int) (*Keyboard, error) {
	log.Infof("No uinput on this platform; virtual keyboard %q will only log events", name)
	return &Keyboard{}, nil
}

func (k *Keyboard) WriteEvent(ev Event) error {
	log.Debugf("uinput: type=%d code=%d value=%d", ev.Type, ev.Code, ev.Value)
	return nil
}

func (k *Keyboard) Close() error {
	return nil
}

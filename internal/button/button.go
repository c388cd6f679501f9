//go:build pi

package button

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Listen initializes all the button pins as pulled up inputs and invokes
// handler with the button identity on every falling edge. Handlers for
// different buttons may run concurrently.
func Listen(pins [Count]int, handler func(Button)) error {
	log.Infoln("Initializing button handler")
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("host init: %w", err)
	}

	for i, n := range pins {
		pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if pin == nil {
			return fmt.Errorf("no GPIO%d present", n)
		}
		if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
			return fmt.Errorf("GPIO%d: %w", n, err)
		}
		go watchButton(pin, Button(i), handler)
	}
	return nil
}

func watchButton(p gpio.PinIO, b Button, handler func(Button)) {
	for {
		// wait for the edge
		if !p.WaitForEdge(time.Second) {
			continue
		}

		log.Debugf("Falling edge on %v (button %v)", p, b)
		handler(b)
	}
}

//go:build !pi

package button

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// Listen simulates the hardware when not running on the Pi. Every SIGHUP
// sent to the process presses the next button in order A, B, X, Y, A...
func Listen(_ [Count]int, handler func(Button)) error {
	log.Infoln("Initializing button handler (simulated, press via SIGHUP)")

	go simulateButtons(handler)
	return nil
}

func simulateButtons(handler func(Button)) {
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)
	defer close(hupChan)

	next := A
	for {
		<-hupChan
		handler(next)
		next = (next + 1) % Count
	}
}

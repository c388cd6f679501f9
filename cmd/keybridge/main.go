package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/keybridge/internal/button"
	"github.com/callebjorkell/keybridge/internal/debounce"
	"github.com/callebjorkell/keybridge/internal/dispatch"
	"github.com/callebjorkell/keybridge/internal/uinput"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app      = kingpin.New("keybridge", "Bridge the Pirate Audio buttons to a virtual keyboard")
	debug    = app.Flag("debug", "Turn on debug logging.").Bool()
	confFile = app.Flag("config", "Read pin and device settings from the given file.").String()
	codeA    = app.Arg("event_code_a", "Key event code for button A (0 disables the button).").Required().Int()
	codeB    = app.Arg("event_code_b", "Key event code for button B (0 disables the button).").Required().Int()
	codeX    = app.Arg("event_code_x", "Key event code for button X (0 disables the button).").Required().Int()
	codeY    = app.Arg("event_code_y", "Key event code for button Y (0 disables the button).").Required().Int()
)

func main() {
	app.Version(fmt.Sprintf("%s (built: %s)", buildVersion, buildTime))
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v: Try --help\n", err)
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	codes, err := eventCodes(*codeA, *codeB, *codeX, *codeY)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		app.Usage(nil)
		os.Exit(1)
	}

	conf := defaultConfig()
	if *confFile != "" {
		conf, err = readConfig(*confFile)
		if err != nil {
			log.Fatalf("Unable to read config: %v", err)
		}
	}

	startBridge(codes, conf)
}

// eventCodes validates the four positional key codes. Positions in errors
// are 1-based to match the argument order on the command line.
func eventCodes(a, b, x, y int) ([button.Count]int, error) {
	codes := [button.Count]int{a, b, x, y}
	for i, c := range codes {
		if c < 0 {
			return codes, fmt.Errorf("argument %d error: event code must be non-negative, got %d", i+1, c)
		}
	}
	return codes, nil
}

func startBridge(codes [button.Count]int, conf *Config) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	kb, err := uinput.Open(conf.DeviceName, codes[:])
	if err != nil {
		log.Fatalf("Unable to create the virtual keyboard: %v", err)
	}
	defer kb.Close()

	gate := debounce.New(conf.DebounceWindow())
	dispatcher := dispatch.New(codes, gate, kb)

	if err := button.Listen(conf.ButtonPins(), dispatcher.OnPress); err != nil {
		kb.Close()
		log.Fatalf("Unable to set up the buttons: %v", err)
	}

	log.Infof("Bridging button presses to %q. Waiting for signal...", conf.DeviceName)
	<-signalChan
	log.Info("Done...")
}

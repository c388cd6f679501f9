package main

import (
	"fmt"
	"os"
	"time"

	"github.com/callebjorkell/keybridge/internal/button"
	"gopkg.in/yaml.v3"
)

const (
	defaultDeviceName     = "keybridge"
	defaultDebounceMillis = 300
)

// defaultPins are the Pirate Audio A, B, X and Y buttons.
var defaultPins = []int{5, 6, 16, 20}

type Config struct {
	DeviceName     string `yaml:"deviceName"`
	DebounceMillis int    `yaml:"debounceMillis"`
	Pins           []int  `yaml:"pins"`
}

func (c Config) DebounceWindow() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

func (c Config) ButtonPins() [button.Count]int {
	var pins [button.Count]int
	copy(pins[:], c.Pins)
	return pins
}

func defaultConfig() *Config {
	return &Config{
		DeviceName:     defaultDeviceName,
		DebounceMillis: defaultDebounceMillis,
		Pins:           defaultPins,
	}
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.DeviceName == "" {
		c.DeviceName = defaultDeviceName
	}
	if c.DebounceMillis < 0 {
		return nil, fmt.Errorf("debounce window must not be negative")
	}
	if c.DebounceMillis == 0 {
		c.DebounceMillis = defaultDebounceMillis
	}
	switch len(c.Pins) {
	case 0:
		c.Pins = defaultPins
	case button.Count:
		for i, p := range c.Pins {
			if p <= 0 {
				return nil, fmt.Errorf("pin number must be positive for entry %d", i)
			}
		}
	default:
		return nil, fmt.Errorf("exactly %d pins must be specified, got %d", button.Count, len(c.Pins))
	}

	return c, nil
}

func readConfig(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

package stream

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the application configuration read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		Script    string  `yaml:"script"`
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"animation"`
	Listen string `yaml:"listen"`
}

// ReadConfig decodes a Config and fills in defaults for anything left unset.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "drawtx"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "drawtx/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "drawtx/control"
	}
	if c.Animation.FrameRate <= 0 {
		c.Animation.FrameRate = 30
	}
	if c.Listen == "" {
		c.Listen = ":3000"
	}
	return c, nil
}

// FrameInterval is the time between published frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Animation.FrameRate)
}

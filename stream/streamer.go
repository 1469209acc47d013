package stream

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"
)

// Streamer publishes frames of an animation over MQTT and accepts control
// commands for it.
type Streamer struct {
	config     Config
	client     mqtt.Client
	animation  Animation
	controller *Controller
	publish    func(topic string, payload []byte) error
	start      time.Time

	mu   sync.RWMutex
	last *Frame
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := newStreamer(config, controller, func(topic string, payload []byte) error {
		token := client.Publish(topic, 0, false, payload)
		token.Wait()
		return token.Error()
	})
	s.client = client
	return s
}

func newStreamer(config Config, controller *Controller, publish func(string, []byte) error) *Streamer {
	s := new(Streamer)
	s.config = config
	s.animation = controller
	s.controller = controller
	s.publish = publish
	s.start = time.Now()
	return s
}

// Subscribe listens for commands on the control topic.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	if token := s.client.Subscribe(topic, 0, s.handleControl); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		return
	}
	log.Printf("Subscribed to %s", topic)
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s", msg.MessageID(), msg.Topic())
	if err := s.handlePayload(msg.Payload()); err != nil {
		log.Println(err)
	}
}

func (s *Streamer) handlePayload(payload []byte) error {
	var cmd Command
	if err := yaml.UnmarshalStrict(payload, &cmd); err != nil {
		return fmt.Errorf("control message: %w", err)
	}
	if cmd.Node == "" {
		return fmt.Errorf("control message: no node")
	}
	if !s.controller.Enqueue(cmd) {
		return fmt.Errorf("control message: queue full, dropped command for %s", cmd.Node)
	}
	return nil
}

// SendFrame calculates the frame at runtimeMs and publishes it.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)

	s.mu.Lock()
	s.last = f
	s.mu.Unlock()

	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.publish(s.config.Mqtt.Topics.Stream, b)
}

// LastFrame returns the most recently sent frame, or nil before the first.
func (s *Streamer) LastFrame() *Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Run causes the Streamer to send frames continuously at the configured rate.
func (s *Streamer) Run() {
	publishTimer := time.NewTicker(s.config.FrameInterval())
	for {
		<-publishTimer.C
		if err := s.SendFrame(time.Since(s.start).Milliseconds()); err != nil {
			log.Println(err)
		}
	}
}

package mqtt

import (
	"fmt"
	"sync"
)

// Publisher sends payloads to an MQTT topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Disconnect()
}

// Message is a payload captured by MockPublisher.
type Message struct {
	Topic   string
	Payload []byte
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	mu       sync.Mutex
	Messages []Message
	Fail     bool
	closed   bool
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish records the message or returns an error if configured to fail.
func (m *MockPublisher) Publish(topic string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Messages = append(m.Messages, Message{Topic: topic, Payload: append([]byte(nil), payload...)})
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *MockPublisher) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.Messages...)
}

// Disconnect marks the publisher closed.
func (m *MockPublisher) Disconnect() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}

// Closed reports whether Disconnect was called.
func (m *MockPublisher) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

package statusline

import (
	"fmt"
	"time"
)

// DefaultMessageTimeout is how long a message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageWarning
	MessageError
	messageTypeCount
)

// Message is the transient text shown in the message bar. It expires
// lazily: Current reports nothing once the timeout has elapsed since Set.
type Message struct {
	text    string
	typ     MessageType
	at      time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewMessage creates an empty message with the given lifetime. A timeout
// of zero or less keeps messages until they are replaced.
func NewMessage(timeout time.Duration) *Message {
	return &Message{timeout: timeout, now: time.Now}
}

// SetClock replaces the time source. Used by tests.
func (m *Message) SetClock(now func() time.Time) {
	m.now = now
}

// Set formats and stores an info message, restarting its lifetime.
func (m *Message) Set(format string, args ...any) {
	m.SetTyped(MessageInfo, format, args...)
}

// SetTyped formats and stores a message of the given type.
func (m *Message) SetTyped(typ MessageType, format string, args ...any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	m.text = format
	m.typ = typ
	m.at = m.now()
}

// Clear removes the message.
func (m *Message) Clear() {
	m.text = ""
	m.typ = MessageInfo
	m.at = time.Time{}
}

// Current returns the message text and type, or "" once it has expired.
func (m *Message) Current() (string, MessageType) {
	if m.text == "" {
		return "", MessageInfo
	}
	if m.timeout > 0 && m.now().Sub(m.at) >= m.timeout {
		m.Clear()
		return "", MessageInfo
	}
	return m.text, m.typ
}

// Text returns the current message text.
func (m *Message) Text() string {
	text, _ := m.Current()
	return text
}

package logging

import "sync"

// MockLogger is a Logger implementation that records messages for assertions
// in tests instead of writing them anywhere.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockEntry
	fields  []Field
	err     error
}

// MockEntry is a single recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Entries returns a copy of all recorded log entries.
func (m *MockLogger) Entries() []MockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasMessage reports whether any entry was logged with the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.entries = append(m.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

// Debug records a debug-level message
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level message
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level message
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level message
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns a logger that attaches err to subsequent entries.
// The returned logger shares the underlying entry slice.
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{parent: m, fields: m.fields, err: err}
}

// WithField returns a logger with one extra field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: m, fields: append(append([]Field{}, m.fields...), Field{Key: key, Value: value}), err: m.err}
}

// WithFields returns a logger with extra fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &mockChild{parent: m, fields: append(append([]Field{}, m.fields...), fields...), err: m.err}
}

// mockChild forwards records to the parent MockLogger with bound context.
type mockChild struct {
	parent *MockLogger
	fields []Field
	err    error
}

func (c *mockChild) record(level, msg string, fields []Field) {
	c.parent.mu.Lock()
	defer c.parent.mu.Unlock()
	all := append(append([]Field{}, c.fields...), fields...)
	c.parent.entries = append(c.parent.entries, MockEntry{Level: level, Message: msg, Fields: all, Err: c.err})
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.record("debug", msg, fields) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.record("info", msg, fields) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.record("warn", msg, fields) }
func (c *mockChild) Error(msg string, fields ...Field) { c.record("error", msg, fields) }

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{parent: c.parent, fields: c.fields, err: err}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: c.parent, fields: append(append([]Field{}, c.fields...), Field{Key: key, Value: value}), err: c.err}
}

func (c *mockChild) WithFields(fields ...Field) Logger {
	return &mockChild{parent: c.parent, fields: append(append([]Field{}, c.fields...), fields...), err: c.err}
}

package testutil

import (
	"bufio"
	"bytes"
	"sync"

	"github.com/goccy/go-json"

	"github.com/hupe1980/agentrelay/logging"
)

// LogCapture collects JSON log lines written by a RelayLogger.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogCapture returns a capture and a debug-level JSON logger writing into it.
func NewLogCapture() (*LogCapture, *logging.RelayLogger) {
	c := &LogCapture{}
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = logging.LogLevelDebug
	cfg.Format = "json"
	cfg.Output = c

	return c, logging.NewLogger(cfg)
}

// Write implements io.Writer.
func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// Entries decodes every captured line. Lines that are not JSON objects are
// skipped.
func (c *LogCapture) Entries() []map[string]any {
	c.mu.Lock()
	data := append([]byte(nil), c.buf.Bytes()...)
	c.mu.Unlock()

	var entries []map[string]any

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}

	return entries
}

// Messages returns the "msg" field of every captured entry in order.
func (c *LogCapture) Messages() []string {
	var msgs []string
	for _, e := range c.Entries() {
		if m, ok := e["msg"].(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Find returns the first entry whose message equals msg.
func (c *LogCapture) Find(msg string) (map[string]any, bool) {
	for _, e := range c.Entries() {
		if e["msg"] == msg {
			return e, true
		}
	}
	return nil, false
}

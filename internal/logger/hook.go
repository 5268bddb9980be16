package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook writes log entries asynchronously so request handling never
// blocks on log I/O. Entries are buffered in a channel and written to the
// configured writers by a dedicated goroutine.
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters creates an async hook writing to multiple writers.
// bufferSize is the entry buffer capacity (default 1000).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels returns the levels this hook handles.
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire enqueues an entry without blocking. When the buffer is full the
// entry is dropped rather than stalling the caller.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook already closed: write synchronously as a fallback.
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Buffer full; drop the entry. Logging here would recurse.
	}

	return nil
}

// processEntries drains the entry channel. A recover guards the goroutine
// so a formatter or writer panic cannot take down the server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Cannot use the logger here; that would loop.
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook marks suppressed entries with "_filtered".
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			writeEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				writeEntry = entry.Dup()
				delete(writeEntry.Data, "_filtered")
			}

			data, err := h.format(writeEntry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close shuts the hook down and waits for buffered entries to flush.
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}

// FilterHook suppresses noisy entries (health checks and other configured
// paths) before they reach the async queue. Suppressed entries are marked
// with a "_filtered" field the async hook honors.
type FilterHook struct {
	filterPaths map[string]struct{}
}

// NewFilterHook creates a filter hook from the logging configuration.
func NewFilterHook(cfg *LogConfig) *FilterHook {
	paths := make(map[string]struct{}, len(cfg.FilterPaths))
	for _, p := range cfg.FilterPaths {
		paths[p] = struct{}{}
	}
	return &FilterHook{filterPaths: paths}
}

// Levels returns the levels this hook handles.
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire marks entries for filtered request paths.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if path, ok := entry.Data["path"].(string); ok {
		if _, filtered := h.filterPaths[path]; filtered {
			entry.Data["_filtered"] = true
		}
	}
	return nil
}

package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StepRecord is one line of a recorded game: the tick counter and the
// snapshot visible after it, plus the events the tick produced.
type StepRecord struct {
	Step   int64    `json:"step"`
	State  Snapshot `json:"state"`
	Events []Event  `json:"events,omitempty"`
}

// Recorder handles asynchronous logging of game ticks to a .jsonl file.
// Writes are queued to a background goroutine so the game loop never blocks
// on disk.
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	queue  chan StepRecord
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create record dir: %w", err)
	}

	name := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		file:   f,
		writer: bufio.NewWriter(f),
		queue:  make(chan StepRecord, 1000),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Filename returns the base name of the record file.
func (r *Recorder) Filename() string {
	return filepath.Base(r.file.Name())
}

// Record queues one tick for writing. Non-blocking: if the queue is full the
// frame is dropped to protect game loop latency.
func (r *Recorder) Record(rec StepRecord) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	select {
	case r.queue <- rec:
	default:
		// Queue full, drop the frame.
	}
}

// Close flushes the buffer and closes the file. Safe to call twice.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.queue)
	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.queue {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
		}
	}
	r.writer.Flush()
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/younwookim/bubblepop/internal/log"
)

// Writer saves results on a background goroutine so the game loop never
// waits on disk or network
type Writer struct {
	store   Store
	logger  *log.Logger
	timeout time.Duration

	ch        chan Result
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	saved   int
	dropped int
	failed  int
}

// NewWriter starts a writer queueing up to buffer results
func NewWriter(s Store, buffer int, logger *log.Logger) *Writer {
	if buffer < 1 {
		buffer = 1
	}
	w := &Writer{
		store:   s,
		logger:  logger,
		timeout: 5 * time.Second,
		ch:      make(chan Result, buffer),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	defer close(w.done)
	for r := range w.ch {
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		err := w.store.Save(ctx, r)
		cancel()

		w.mu.Lock()
		if err != nil {
			w.failed++
		} else {
			w.saved++
		}
		w.mu.Unlock()

		if err != nil {
			w.logger.Warnf("%v", err)
		} else {
			w.logger.Debugf("round %s saved", r.RoundID)
		}
	}
}

// Submit queues r without blocking. It returns false and drops r when the
// queue is full.
func (w *Writer) Submit(r Result) bool {
	select {
	case w.ch <- r:
		return true
	default:
		w.mu.Lock()
		w.dropped++
		w.mu.Unlock()
		w.logger.Warnf("results queue full, dropping round %s", r.RoundID)
		return false
	}
}

// Close drains the queue and closes the store. Submit must not be called
// after Close.
func (w *Writer) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.ch)
		<-w.done
		err = w.store.Close()
	})
	return err
}

// Stats returns how many results were saved, dropped and failed
func (w *Writer) Stats() (saved, dropped, failed int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saved, w.dropped, w.failed
}

// Package zerg is an asynchronous, low-latency logging library. Producers on
// any goroutine enqueue records onto a bounded lock-free MPMC ring; a single
// background worker per engine drains them to a file or console sink with
// size-bounded truncation rotation.
package zerg

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/joeloftusdev/zerg/queue"
	"github.com/joeloftusdev/zerg/sanitizer"
)

// Logger is one asynchronous logging engine: a bounded MPMC ring, a single
// background worker, a sink, and a rotation policy. Producers on any
// goroutine call Log; only the worker (and caller-driven Sync drains) touch
// the sink.
type Logger struct {
	cfg *Config

	queue *queue.Queue[Record]
	level atomic.Int64

	// fileMu guards the sink, the written-byte count, and the render
	// scratch buffers shared by the worker and Sync.
	fileMu      sync.Mutex
	sink        Sink
	currentSize int64
	rawBuf      []byte
	lineBuf     []byte
	san         *sanitizer.Sanitizer

	// mu/cond is the consumer-side wait: the worker sleeps here until a
	// producer signals a new item or shutdown sets the stop flag.
	mu   sync.Mutex
	cond *sync.Cond

	// emptyMu/emptyCond is broadcast by Sync once quiescence is reached.
	emptyMu   sync.Mutex
	emptyCond *sync.Cond

	stop       atomic.Bool
	workerDone chan struct{}
	hbStop     chan struct{}
	closeOnce  sync.Once
	closeErr   error

	startTime time.Time
	limiter   *rate.Limiter
	processed atomic.Uint64
	dropped   atomic.Uint64
	hbSeq     atomic.Uint64
}

// NewLogger builds an engine from cfg: opens the sink, seeds the ring, and
// spawns the worker. A file sink is opened at cfg.Directory + cfg.Name unless
// cfg.Console selects standard output.
func NewLogger(cfg *Config) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var sink Sink
	if cfg.Console {
		sink = NewConsoleSink()
	} else {
		fs, err := NewFileSink(cfg.fullPath(), int(cfg.FileBufferSize))
		if err != nil {
			return nil, err
		}
		sink = fs
	}
	return newLogger(cfg, sink)
}

// NewLoggerWithSink builds an engine draining into a caller-provided sink.
// The engine takes ownership; the sink is closed on Close.
func NewLoggerWithSink(cfg *Config, sink Sink) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newLogger(cfg, sink)
}

func newLogger(cfg *Config, sink Sink) (*Logger, error) {
	l := &Logger{
		cfg:        cfg.Clone(),
		queue:      queue.New[Record](uint64(cfg.BufferSize)),
		sink:       sink,
		workerDone: make(chan struct{}),
		startTime:  time.Now(),
		san:        sanitizer.New().Policy(sanitizer.PolicyPreset(cfg.Sanitization)),
	}
	l.cond = sync.NewCond(&l.mu)
	l.emptyCond = sync.NewCond(&l.emptyMu)
	l.level.Store(int64(cfg.Level))

	if fs, ok := sink.(*FileSink); ok {
		l.currentSize = fs.Size()
	}
	if cfg.MaxLogRate > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(cfg.MaxLogRate), int(cfg.MaxLogRate))
	}

	go l.worker()

	if cfg.HeartbeatIntervalS > 0 {
		l.hbStop = make(chan struct{})
		go l.heartbeat(time.Duration(cfg.HeartbeatIntervalS) * time.Second)
	}
	return l, nil
}

// SetLogLevel changes the active severity threshold.
func (l *Logger) SetLogLevel(level Level) {
	l.level.Store(int64(level))
}

// LogLevel returns the active severity threshold.
func (l *Logger) LogLevel() Level {
	return Level(l.level.Load())
}

// Log renders a record and enqueues it. It never blocks on the queue: when
// the ring is full the record is dropped silently. A malformed format string
// still produces a record, with an error marker payload.
func (l *Logger) Log(level Level, file string, line int, format string, args ...any) {
	if l.stop.Load() {
		return
	}
	if level < Level(l.level.Load()) {
		return
	}
	if l.limiter != nil && !l.limiter.Allow() {
		l.dropped.Add(1)
		return
	}

	rec := Record{
		Level:   level,
		File:    file,
		Line:    line,
		Payload: Format(format, args...),
	}
	if !l.queue.TryEnqueue(rec) {
		l.dropped.Add(1)
		return
	}

	l.mu.Lock()
	l.cond.Signal()
	l.mu.Unlock()
}

// Sync drains the queue on the calling goroutine through the same per-record
// path the worker uses, flushing the sink after each pass. It returns once
// the queue has stayed empty for the stability window, guarding against
// producers racing the drain, then wakes anyone blocked on the empty
// condition.
func (l *Logger) Sync() {
	stableStart := time.Now()
	for {
		processed := false
		for {
			rec, ok := l.queue.TryDequeue()
			if !ok {
				break
			}
			l.processRecord(rec)
			processed = true
		}

		l.fileMu.Lock()
		if err := l.sink.Flush(); err != nil {
			internalLog("sink flush failed: %v\n", err)
		}
		l.fileMu.Unlock()

		if processed {
			stableStart = time.Now()
		} else if time.Since(stableStart) >= syncStableWindow {
			break
		}
		time.Sleep(syncPollInterval)
	}

	l.emptyMu.Lock()
	l.emptyCond.Broadcast()
	l.emptyMu.Unlock()
}

// WaitUntilEmpty polls until the ring is observed empty and reports whether
// that happened within the timeout.
func (l *Logger) WaitUntilEmpty() bool {
	deadline := time.Now().Add(waitEmptyTimeout)
	for !l.queue.IsEmpty() {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(syncPollInterval)
	}
	return true
}

// Close shuts the engine down: best-effort drain, stop flag, worker join,
// final flush, sink close. Log must not be called afterwards.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.Sync()

		l.stop.Store(true)
		l.mu.Lock()
		l.cond.Broadcast()
		l.mu.Unlock()

		if l.hbStop != nil {
			close(l.hbStop)
		}
		<-l.workerDone

		l.fileMu.Lock()
		if err := l.sink.Flush(); err != nil {
			l.closeErr = fmtErrorf("flush on close: %v", err)
		}
		if err := l.sink.Close(); err != nil && l.closeErr == nil {
			l.closeErr = fmtErrorf("close sink: %v", err)
		}
		l.fileMu.Unlock()
	})
	return l.closeErr
}

// Size reports a best-effort count of queued records.
func (l *Logger) Size() uint64 {
	return l.queue.Size()
}

// Processed returns the number of records written to the sink.
func (l *Logger) Processed() uint64 {
	return l.processed.Load()
}

// Dropped returns the number of records lost to a full ring, rate limiting,
// or sink write failures.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

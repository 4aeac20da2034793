package zerg

import (
	"time"
)

// worker is the single consumer goroutine. It sleeps on the condition
// variable until a producer signals, drains everything the ring currently
// holds into a local batch, then processes the batch without holding the
// consumer mutex. On stop it performs one final drain before exiting.
func (l *Logger) worker() {
	defer close(l.workerDone)

	batch := make([]Record, 0, 64)

	l.mu.Lock()
	for {
		for !l.stop.Load() && l.queue.IsEmpty() {
			l.cond.Wait()
		}
		stopping := l.stop.Load()

		batch = batch[:0]
		for {
			rec, ok := l.queue.TryDequeue()
			if !ok {
				break
			}
			batch = append(batch, rec)
		}
		l.mu.Unlock()

		for _, rec := range batch {
			l.processRecord(rec)
		}

		if stopping {
			// Records can race in between the drain above and the stop
			// flag observation; take them with us.
			for {
				rec, ok := l.queue.TryDequeue()
				if !ok {
					return
				}
				l.processRecord(rec)
			}
		}
		l.mu.Lock()
	}
}

// processRecord renders, sanitises, rotates if needed, and writes one record.
// Called by the worker and by Sync on the caller's goroutine; the file mutex
// serialises both paths.
func (l *Logger) processRecord(rec Record) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	l.rawBuf = appendLine(l.rawBuf[:0], time.Now(), rec)
	l.lineBuf = l.san.Append(l.lineBuf[:0], string(l.rawBuf))
	n := int64(len(l.lineBuf))

	if l.cfg.MaxFileSize > 0 && l.currentSize+n > l.cfg.MaxFileSize {
		l.rotate()
	}

	if err := l.sink.Write(l.lineBuf); err != nil {
		internalLog("sink write failed: %v\n", err)
		l.dropped.Add(1)
		return
	}
	if err := l.sink.WriteNewline(); err != nil {
		internalLog("sink write failed: %v\n", err)
		l.dropped.Add(1)
		return
	}
	l.currentSize += n + 1
	l.processed.Add(1)
}

// rotate truncates the file sink in place. Console and custom sinks do not
// rotate. Caller holds fileMu.
func (l *Logger) rotate() {
	fs, ok := l.sink.(*FileSink)
	if !ok {
		return
	}
	if err := fs.Reopen(); err != nil {
		internalLog("rotation failed: %v\n", err)
		return
	}
	l.currentSize = 0
}

package zerg

import (
	"time"
)

// heartbeat periodically emits an engine statistics record through the
// normal enqueue path, so it is subject to the same filtering, drop policy,
// and ordering as any other record.
func (l *Logger) heartbeat(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.hbStop:
			return
		case <-ticker.C:
			seq := l.hbSeq.Add(1)
			uptime := time.Since(l.startTime).Round(time.Second)
			l.Log(LevelInfo, "heartbeat", 0,
				"heartbeat seq={} uptime={} processed={} dropped={}",
				seq, uptime, l.processed.Load(), l.dropped.Load())
		}
	}
}

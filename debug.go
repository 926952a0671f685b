package fader

import "log/slog"

// debugLog reports per-frame stats at debug level. Only active when the
// engine is in debug mode; idle frames are not logged.
func (e *Engine) debugLog(stats FrameStats) {
	if !e.debug || stats.Idle {
		return
	}
	e.logger.Debug("frame",
		slog.Bool("unsafe", stats.Unsafe),
		slog.Bool("restored", stats.Restored),
		slog.Int("resolved", stats.Resolved),
		slog.Int("commands", stats.Commands),
		slog.Int("pending_delays", e.rules.Pending()),
		slog.String("conditions", e.agg.Snapshot().String()),
		slog.Duration("elapsed", stats.Elapsed),
	)
}

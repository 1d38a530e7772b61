// README: Simulation engine: drains the time-ordered event queue to completion.
package sim

import (
	"context"
	"log/slog"

	"ridesim/internal/container"
	"ridesim/internal/modules/dispatch"
)

// NoHorizon runs the simulation until the event queue is empty.
const NoHorizon = -1

// Engine owns the event queue and runs the simulation as a strict
// sequential reduction: pop the earliest event, apply it, push whatever
// it schedules. Equal timestamps are processed in insertion order, which
// makes a run deterministic and replayable for a fixed seed sequence.
type Engine struct {
	queue      *container.PriorityQueue[Event]
	dispatcher *dispatch.Dispatcher
	sink       Notifier
	horizon    int
	logger     *slog.Logger
	processed  int
}

// New constructs an engine over the given dispatcher and sink.
// horizon is the last timestamp that will be processed, or NoHorizon.
func New(dispatcher *dispatch.Dispatcher, sink Notifier, horizon int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		queue: container.NewPriorityQueue[Event](func(a, b Event) bool {
			return a.Timestamp() < b.Timestamp()
		}),
		dispatcher: dispatcher,
		sink:       sink,
		horizon:    horizon,
		logger:     logger,
	}
}

// Schedule inserts events into the queue. Seed events may arrive in any
// order; the queue sorts on ingestion.
func (e *Engine) Schedule(events ...Event) {
	for _, ev := range events {
		e.queue.Push(ev)
	}
}

// Run processes events until the queue is empty or the horizon is
// passed. Events beyond the horizon are discarded, not executed. Returns
// the context error if cancelled mid-run.
func (e *Engine) Run(ctx context.Context) error {
	for !e.queue.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := e.queue.Pop()
		if e.horizon != NoHorizon && ev.Timestamp() > e.horizon {
			e.logger.Debug("horizon reached, discarding remaining events",
				"horizon", e.horizon, "discarded", e.queue.Len()+1)
			return nil
		}
		e.logger.Debug("event", "at", ev.Timestamp(), "detail", ev.String())
		e.Schedule(ev.Do(e.dispatcher, e.sink)...)
		e.processed++
	}
	return nil
}

// Processed returns how many events have been executed so far.
func (e *Engine) Processed() int {
	return e.processed
}

// Pending returns how many events are still queued.
func (e *Engine) Pending() int {
	return e.queue.Len()
}

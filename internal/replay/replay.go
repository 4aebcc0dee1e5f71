// Package replay feeds a stream of insert/delete events into a mex tracker
// and records the mex observed after each event.
package replay

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"mexset/internal/common"
	"mexset/internal/mex"
)

// Run applies every event from it to target and returns the mex after each
// one. Delete events require target to be a mex.Tracker.
//
// Run stops at the first failing event and returns the values recorded so
// far together with the error, annotated with the event's position.
func Run[I common.Integer](ctx context.Context, target mex.Inserter[I], it common.EventIterator[I]) ([]I, error) {
	start := time.Now()
	tracker, canRemove := target.(mex.Tracker[I])

	var out []I
	for idx := 0; ; idx++ {
		if err := ctx.Err(); err != nil {
			return out, errors.Wrapf(err, "replay stopped before event %d", idx)
		}

		ev, err := it.Next()
		if err != nil {
			return out, errors.Wrapf(err, "read event %d", idx)
		}
		if ev == nil {
			break
		}

		switch ev.Type {
		case common.EventTypeInsert:
			err = target.Add(ev.Value)
		case common.EventTypeDelete:
			if !canRemove {
				err = common.ErrRemoveUnsupported
				break
			}
			err = tracker.Remove(ev.Value)
		default:
			err = errors.Errorf("unknown event type %d", ev.Type)
		}
		if err != nil {
			return out, errors.Wrapf(err, "event %d (%s %v)", idx, ev.Type, ev.Value)
		}
		out = append(out, target.Mex())
	}

	common.LogThroughput(start, len(out), "replayed events, final mex %v", target.Mex())
	return out, nil
}


package mousefilter

import (
	"sync"
	"time"

	"github.com/jmigpin/squidl/util/uiutil/event"
)

// Coalesces pointer moves to at most one per frame. Other events pass through, preceded by the pending move so the order is kept.
type MoveFilter struct {
	fps    int
	emitFn func(any)
	IsMove func(any) bool

	last struct {
		sync.Mutex
		timer  *time.Timer
		sent   time.Time
		moveEv any
		closed bool
	}
}

func NewMoveFilter(fps int, emitFn func(any)) *MoveFilter {
	if fps < 1 {
		fps = 1
	}
	return &MoveFilter{fps: fps, emitFn: emitFn, IsMove: isMouseMove}
}

func isMouseMove(ev any) bool {
	_, ok := ev.(*event.MouseMove)
	return ok
}

func (movef *MoveFilter) frameDur() time.Duration {
	return time.Second / time.Duration(movef.fps)
}

//----------

func (movef *MoveFilter) Filter(ev any) {
	if movef.IsMove(ev) {
		movef.keepMoveEv(ev)
		return
	}
	movef.last.Lock()
	defer movef.last.Unlock()
	if movef.last.closed {
		return
	}
	movef.flushMoveEv()
	movef.emitFn(ev)
}

func (movef *MoveFilter) keepMoveEv(moveEv any) {
	movef.last.Lock()
	defer movef.last.Unlock()
	if movef.last.closed {
		return
	}
	if movef.last.timer != nil {
		// discard older moves, the timer sends the last one
		movef.last.moveEv = moveEv
		return
	}
	now := time.Now()
	d := now.Sub(movef.last.sent)
	if d >= movef.frameDur() {
		movef.last.sent = now
		movef.emitFn(moveEv)
		return
	}
	movef.last.moveEv = moveEv
	movef.last.timer = time.AfterFunc(movef.frameDur()-d, movef.sendMoveEv)
}

func (movef *MoveFilter) sendMoveEv() {
	movef.last.Lock()
	defer movef.last.Unlock()
	if movef.last.closed {
		return
	}
	movef.flushMoveEv()
}

// Needs the lock.
func (movef *MoveFilter) flushMoveEv() {
	if movef.last.moveEv != nil {
		movef.last.sent = time.Now()
		movef.emitFn(movef.last.moveEv)
		movef.last.moveEv = nil
	}
	if movef.last.timer != nil {
		movef.last.timer.Stop()
		movef.last.timer = nil
	}
}

// Drops the pending move. Later events are ignored.
func (movef *MoveFilter) Close() {
	movef.last.Lock()
	defer movef.last.Unlock()
	movef.last.closed = true
	movef.last.moveEv = nil
	if movef.last.timer != nil {
		movef.last.timer.Stop()
		movef.last.timer = nil
	}
}

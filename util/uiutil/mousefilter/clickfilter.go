package mousefilter

import (
	"image"
	"time"

	"github.com/jmigpin/squidl/util/uiutil/event"
)

const (
	ClickInterval = 400 * time.Millisecond
	MoveMargin    = 3
	MaxClicks     = 3
)

// Counts single/double/triple clicks per button. The count is set on the button down and cycles back to one after a triple click.
type ClickCounter struct {
	Now func() time.Time // defaults to time.Now

	m map[event.MouseButton]*multipleClick
}

func NewClickCounter() *ClickCounter {
	return &ClickCounter{Now: time.Now, m: map[event.MouseButton]*multipleClick{}}
}

// Returns the click count of this press.
func (cc *ClickCounter) Down(b event.MouseButton, p image.Point) int {
	// initialize on demand
	mc, ok := cc.m[b]
	if !ok {
		mc = &multipleClick{}
		cc.m[b] = mc
	}

	now := cc.Now()
	d := now.Sub(mc.downTime)
	if mc.count == 0 || d > ClickInterval || DetectMove(mc.downPoint, p) {
		mc.count = 1
	} else {
		mc.count = mc.count%MaxClicks + 1
	}
	mc.downTime = now
	mc.downPoint = p
	return mc.count
}

// Returns the count of the matching press, or zero if there was none (or it was dropped by a move).
func (cc *ClickCounter) Up(b event.MouseButton, p image.Point) int {
	mc, ok := cc.m[b]
	if !ok {
		return 0
	}
	return mc.count
}

// Moving away from the press point restarts the count.
func (cc *ClickCounter) Move(p image.Point) {
	for b, mc := range cc.m {
		if DetectMove(mc.downPoint, p) {
			delete(cc.m, b)
		}
	}
}

//----------

type multipleClick struct {
	downTime  time.Time
	downPoint image.Point
	count     int
}

//----------

// Reports if the points are further apart than the move margin on any axis.
func DetectMove(p0, p1 image.Point) bool {
	r := image.Rectangle{p0, p0}.Inset(-MoveMargin)
	r.Max = r.Max.Add(image.Point{1, 1})
	return !p1.In(r)
}

package chanutil

import (
	"container/list"
)

// Unbounded channel queue. Values are delivered in order; nil values are dropped.
type ChanQ struct {
	q       list.List
	in, out chan any
	done    chan struct{}
}

func NewChanQ(inSize, outSize int) *ChanQ {
	ch := &ChanQ{}
	ch.in = make(chan any, inSize)
	ch.out = make(chan any, outSize)
	ch.done = make(chan struct{})
	go ch.loop()
	return ch
}

func (ch *ChanQ) In() chan<- any {
	return ch.in
}

func (ch *ChanQ) Out() <-chan any {
	return ch.out
}

// Stops the queue loop. Pending values are discarded. Must be called once.
func (ch *ChanQ) Close() {
	close(ch.done)
}

// Sends v unless the queue was closed. Returns false if closed.
func (ch *ChanQ) Send(v any) bool {
	select {
	case ch.in <- v:
		return true
	case <-ch.done:
		return false
	}
}

func (ch *ChanQ) loop() {
	var next any
	var out chan<- any
	for {
		select {
		case <-ch.done:
			ch.q.Init()
			return
		case v := <-ch.in:
			if v == nil {
				continue
			}
			if next == nil {
				next = v
				out = ch.out
			} else {
				ch.q.PushBack(v)
			}
		case out <- next:
			elem := ch.q.Front()
			if elem == nil {
				next = nil
				out = nil
			} else {
				next = elem.Value
				ch.q.Remove(elem)
			}
		}
	}
}

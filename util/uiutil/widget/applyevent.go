package widget

import (
	"github.com/jmigpin/squidl/util/evreg"
	"github.com/jmigpin/squidl/util/uiutil/event"
)

// Delivers events to registered nodes, last registered first, until one handles the event. Nodes are held weakly: a node that is gone is pruned and never needs to be unregistered.
type Dispatcher struct {
	reg evreg.Register[EmbedNode]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

//----------

func (d *Dispatcher) AddListener(n Node) {
	if isNilNode(n) {
		logNilNode("add listener")
		return
	}
	d.reg.Add(n.Embed())
}

// Also prunes the entries of nodes that are gone.
func (d *Dispatcher) RemoveListener(n Node) {
	if isNilNode(n) {
		logNilNode("remove listener")
		return
	}
	d.reg.Remove(n.Embed())
}

// Registers the node and its descendants, parents before childs.
func (d *Dispatcher) AddTree(n Node) {
	if isNilNode(n) {
		logNilNode("add tree")
		return
	}
	d.AddListener(n)
	for _, c := range n.Childs() {
		d.AddTree(c)
	}
}

func (d *Dispatcher) RemoveTree(n Node) {
	if isNilNode(n) {
		logNilNode("remove tree")
		return
	}
	d.RemoveListener(n)
	for _, c := range n.Childs() {
		d.RemoveTree(c)
	}
}

// Number of entries (may include nodes that are gone but not yet pruned).
func (d *Dispatcher) Len() int {
	return d.reg.Len()
}

//----------

// Iterates a pruned snapshot, so listeners may be added or removed by the handlers.
func (d *Dispatcher) Dispatch(ev event.Event) {
	d.reg.Prune()
	u := d.reg.Values()
	for i := len(u) - 1; i >= 0; i-- {
		u[i].Wrapper.OnEvent(ev)
		if ev.IsHandled() {
			break
		}
	}
}

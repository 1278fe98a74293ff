package evreg

import (
	"runtime"
	"testing"
)

type item struct {
	name string
	buf  [64]byte
}

func TestAddRemove(t *testing.T) {
	reg := Register[item]{}
	a, b := &item{name: "a"}, &item{name: "b"}

	if !reg.Add(a) || !reg.Add(b) {
		t.Fatal("expecting add")
	}
	if reg.Add(a) {
		t.Fatal("duplicate added")
	}
	if reg.Add(nil) {
		t.Fatal("nil added")
	}
	if reg.Len() != 2 {
		t.Fatal(reg.Len())
	}

	vs := reg.Values()
	if len(vs) != 2 || vs[0] != a || vs[1] != b {
		t.Fatal(vs)
	}

	if !reg.Remove(a) {
		t.Fatal("expecting remove")
	}
	if reg.Remove(a) {
		t.Fatal("removed twice")
	}
	if reg.Len() != 1 || reg.Values()[0] != b {
		t.Fatal(reg.Values())
	}
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestPrune(t *testing.T) {
	reg := Register[item]{}
	keep := &item{name: "keep"}
	reg.Add(keep)
	addTemp(&reg)
	if reg.Len() != 2 {
		t.Fatal(reg.Len())
	}

	runtime.GC()
	runtime.GC()

	if n := reg.Prune(); n != 1 {
		t.Fatalf("pruned %v", n)
	}
	if reg.Len() != 1 || reg.Values()[0] != keep {
		t.Fatal(reg.Values())
	}
	runtime.KeepAlive(keep)
}

func TestRemovePrunes(t *testing.T) {
	reg := Register[item]{}
	keep := &item{name: "keep"}
	other := &item{name: "other"}
	reg.Add(keep)
	addTemp(&reg)
	reg.Add(other)

	runtime.GC()
	runtime.GC()

	reg.Remove(other)
	if reg.Len() != 1 {
		t.Fatal(reg.Len())
	}
	runtime.KeepAlive(keep)
	runtime.KeepAlive(other)
}

//go:noinline
func addTemp(reg *Register[item]) {
	reg.Add(&item{name: "temp"})
}

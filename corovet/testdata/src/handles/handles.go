package handles

import "github.com/yieldpoint/coro"

type job struct {
	h *coro.Handle[int, int]
}

var leaked *coro.Handle[int, int]

var registry = map[string]*coro.Handle[int, int]{}

func storeInStruct(j *job, h *coro.Handle[int, int]) {
	j.h = h // want `coroutine handle stored outside its body`
}

func storeInGlobal(h *coro.Handle[int, int]) {
	leaked = h // want `coroutine handle stored outside its body`
}

func storeInMap(h *coro.Handle[int, int]) {
	registry["one"] = h // want `coroutine handle stored outside its body`
}

func storeThroughPointer(p **coro.Handle[int, int], h *coro.Handle[int, int]) {
	*p = h // want `coroutine handle stored outside its body`
}

func returnHandle(h *coro.Handle[int, int]) *coro.Handle[int, int] {
	return h // want `coroutine handle stored outside its body`
}

func sendHandle(ch chan *coro.Handle[int, int], h *coro.Handle[int, int]) {
	ch <- h // want `coroutine handle crosses a goroutine boundary`
}

func yieldFromGoroutine(h *coro.Handle[int, int]) {
	go func() {
		h.Yield(1) // want `coroutine handle crosses a goroutine boundary`
	}()
}

func yieldDirectlyInGoroutine(h *coro.Handle[int, int]) {
	go h.Yield(2) // want `coroutine handle crosses a goroutine boundary`
}

func passToGoroutine(h *coro.Handle[int, int]) {
	go drive(h) // want `coroutine handle crosses a goroutine boundary`
}

func drive(h *coro.Handle[int, int]) {
	h.Yield(0)
}

func localUse(h *coro.Handle[int, int]) int {
	alias := h
	return alias.Yield(1)
}

func storeInLocalStruct(h *coro.Handle[int, int]) int {
	var j job
	j.h = h
	return j.h.Yield(3)
}

func storeInLocalMap(h *coro.Handle[int, int]) {
	pool := map[string]*coro.Handle[int, int]{}
	pool["one"] = h
	pool["one"].Yield(4)
}

func storeThroughLocalPointer(h *coro.Handle[int, int]) {
	var slot *coro.Handle[int, int]
	p := &slot
	*p = h
	slot.Yield(5)
}

package ffi7z

import (
	"sync"
	"weak"
)

// arena maps back-reference tokens stored in native structs to the objects
// they stand for. Entries are weak so native code never keeps an object
// alive. Tokens are never reused.
type arena struct {
	mu    sync.Mutex
	next  uintptr
	slots map[uintptr]weak.Pointer[Unknown]
}

var objects = &arena{next: 1, slots: make(map[uintptr]weak.Pointer[Unknown])}

func (a *arena) add(u *Unknown) uintptr {
	a.mu.Lock()
	defer a.mu.Unlock()
	token := a.next
	a.next++
	a.slots[token] = weak.Make(u)
	return token
}

// get returns nil for released or unknown tokens.
func (a *arena) get(token uintptr) *Unknown {
	a.mu.Lock()
	wp, ok := a.slots[token]
	a.mu.Unlock()
	if !ok {
		return nil
	}
	return wp.Value()
}

func (a *arena) remove(token uintptr) {
	a.mu.Lock()
	delete(a.slots, token)
	a.mu.Unlock()
}

func (a *arena) len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.slots)
}

package propvar

import (
	"sync"
	"unsafe"
)

// HeapAllocator keeps variants and BSTRs on the Go heap. Live buffers are
// pinned in a map because the variant stores them as untyped words.
type HeapAllocator struct {
	mu   sync.Mutex
	live map[*WChar][]uint32
}

// NewHeapAllocator returns an empty allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: make(map[*WChar][]uint32)}
}

func (h *HeapAllocator) NewVariant() *PropVariant {
	return new(PropVariant)
}

func (h *HeapAllocator) FreeVariant(v *PropVariant) {
	if v != nil {
		v.Clear(h)
	}
}

// AllocBSTR lays out a length word, the payload and a zeroed terminator word.
func (h *HeapAllocator) AllocBSTR(data []byte) *WChar {
	buf := make([]uint32, 1+(len(data)+3)/4+1)
	buf[0] = uint32(len(data))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&buf[1])), len(data)), data)
	p := (*WChar)(unsafe.Pointer(&buf[1]))

	h.mu.Lock()
	h.live[p] = buf
	h.mu.Unlock()
	return p
}

func (h *HeapAllocator) FreeBSTR(p *WChar) {
	h.mu.Lock()
	delete(h.live, p)
	h.mu.Unlock()
}

// Live returns the number of BSTRs not yet freed.
func (h *HeapAllocator) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

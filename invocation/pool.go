package invocation

import "sync"

const (
	// Scratch limits to prevent memory bloat from oversized struct slots
	scratchMaxCap  = 1024
	scratchInitCap = 16
)

// Scratch byte pool for transient per-slot write buffers. A buffer is taken
// immediately before a scalar conversion, its bytes are copied into the
// frame, and it is returned before the coercion step finishes. Buffers are
// never retained and never shared across calls.
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, scratchInitCap)
		return &buf
	},
}

func getScratch(size uintptr) *[]byte {
	buf := scratchPool.Get().(*[]byte)
	if uintptr(cap(*buf)) < size {
		*buf = make([]byte, size)
	}
	*buf = (*buf)[:size]
	for i := range *buf {
		(*buf)[i] = 0
	}
	return buf
}

func putScratch(buf *[]byte) {
	if buf == nil || cap(*buf) > scratchMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}

package game

import (
	"fmt"
	"sync/atomic"
)

var lastGeneration uint32

func nextGeneration() uint32 {
	return atomic.AddUint32(&lastGeneration, 1)
}

// Handle identifies a covered tile of one Board. Hosts map handles to their
// own renderables; the zero Handle is never issued.
type Handle struct {
	generation uint32
	index      uint32
}

func (handle Handle) IsZero() bool {
	return handle.generation == 0
}

func (handle Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", handle.generation, handle.index)
}

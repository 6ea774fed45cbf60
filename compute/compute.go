// Package compute resolves the compute backend once at process start
// into an explicit context object that is passed down to consumers.
// There is no mutable package-level state: the entry point builds one
// Context and owns it.
package compute

import (
	"fmt"
	"runtime"
)

// Backend identifies the numeric compute backend.
type Backend uint8

const (
	CPU Backend = iota
	CUDA
	OpenCL
)

func (b Backend) String() string {
	return [...]string{"CPU", "CUDA", "OpenCL"}[b]
}

// Capability is the result of probing one accelerator backend. An
// unavailable capability deterministically routes consumers to the CPU
// fallback; there is no runtime existence probing after construction.
type Capability struct {
	Available bool
	Backend   Backend
	Device    string
}

// Probe checks one accelerator backend. Probes run exactly once, inside
// NewContext.
type Probe func() Capability

// Context carries the resolved backend choice and resource limits.
type Context struct {
	Backend        Backend
	Device         string
	Cores          int     // worker cores available to array math
	RAMMaxFraction float64 // ceiling on system RAM use, 0..1
}

// NewContext resolves the compute configuration. reserveCores CPU cores
// are left free for the rest of the system; the first available probed
// capability wins, otherwise the CPU backend is selected.
func NewContext(reserveCores int, ramMaxFraction float64, probes ...Probe) *Context {
	cores := runtime.NumCPU() - reserveCores
	if cores < 1 {
		cores = 1
	}
	ctx := &Context{
		Backend:        CPU,
		Cores:          cores,
		RAMMaxFraction: ramMaxFraction,
	}
	for _, probe := range probes {
		if cap := probe(); cap.Available {
			ctx.Backend = cap.Backend
			ctx.Device = cap.Device
			break
		}
	}
	return ctx
}

// Label returns the status-line description of the context.
func (c *Context) Label() string {
	if c.Backend != CPU {
		return fmt.Sprintf("%s · %s", c.Backend, c.Device)
	}
	return fmt.Sprintf("CPU · %d cores", c.Cores)
}

package logger

import "runtime"

// CallerProvider locates the call site of a record.
type CallerProvider interface {
	// Caller returns the frame skip levels above the function that calls
	// Caller; skip 0 is that function itself. When the stack is shallower than
	// requested the outermost frame is returned. ok is false only when no
	// frame is available at all.
	Caller(skip int) (loc Location, ok bool)
}

// RuntimeCallers walks the goroutine stack with runtime.Callers.
type RuntimeCallers struct{}

func (RuntimeCallers) Caller(skip int) (Location, bool) {
	var pcs [32]uintptr
	// 0 is runtime.Callers, 1 is this method.
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return Location{}, false
	}
	frames := runtime.CallersFrames(pcs[:n])
	var last runtime.Frame
	for i := 0; ; i++ {
		f, more := frames.Next()
		if i == skip {
			return frameLocation(f), true
		}
		last = f
		if !more {
			break
		}
	}
	return frameLocation(last), true
}

// NoCallers never finds a frame. Records then carry the placeholder tag.
type NoCallers struct{}

func (NoCallers) Caller(int) (Location, bool) { return Location{}, false }

func frameLocation(f runtime.Frame) Location {
	return Location{Function: f.Function, File: f.File, Line: f.Line}
}

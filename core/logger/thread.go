package logger

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// ThreadNamer returns the identifying name of the calling goroutine.
type ThreadNamer func() string

var goroutineNames sync.Map // uint64 -> string

// GoroutineID returns the runtime id of the calling goroutine, or 0 if it
// cannot be determined.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 18 [running]:\n..."
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// NameGoroutine attaches name to the calling goroutine until release is
// called. Worker loops use it so their records read "[Thread: <name>]".
func NameGoroutine(name string) (release func()) {
	id := GoroutineID()
	if id == 0 {
		return func() {}
	}
	goroutineNames.Store(id, name)
	return func() { goroutineNames.Delete(id) }
}

// ThreadName names the calling goroutine: a name set with NameGoroutine,
// "main" for the main goroutine, "goroutine-<id>" otherwise.
func ThreadName() string {
	id := GoroutineID()
	if v, ok := goroutineNames.Load(id); ok {
		return v.(string)
	}
	switch id {
	case 0:
		return "unknown"
	case 1:
		return "main"
	}
	return "goroutine-" + strconv.FormatUint(id, 10)
}

package bridge

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Sentinel errors for handle operations.
var (
	// ErrUnknownHandle is returned for a handle that was never issued or
	// has been destroyed.
	ErrUnknownHandle = errors.New("bridge: unknown handle")

	// ErrKindMismatch is returned when a handle is used with an operation
	// of another structure kind.
	ErrKindMismatch = errors.New("bridge: handle kind mismatch")
)

// Handle is an opaque reference to a live instance. Zero is never issued.
type Handle uint64

// Kind names the structure behind a handle.
type Kind uint8

const (
	KindAVL Kind = iota + 1
	KindGraph
	KindHeap
	KindHashTable
	KindList
)

var kindNames = map[Kind]string{
	KindAVL:       "avl",
	KindGraph:     "graph",
	KindHeap:      "heap",
	KindHashTable: "hashtable",
	KindList:      "list",
}

// String returns the lower-case structure name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// entry owns one instance. mu serializes every call on the handle; dead is
// set under mu by Destroy so a caller that loaded the entry just before
// removal sees ErrUnknownHandle.
type entry struct {
	mu    sync.Mutex
	kind  Kind
	value any
	dead  bool
}

// Registry maps handles to instances. It is safe for concurrent use: calls
// on distinct handles run in parallel, calls on one handle are serialized.
type Registry struct {
	entries *xsync.MapOf[Handle, *entry]
	next    atomic.Uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: xsync.NewMapOf[Handle, *entry]()}
}

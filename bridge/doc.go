// Package bridge exposes every structure in this module through opaque
// integer handles, for hosts that cannot hold Go pointers.
//
// A Registry issues a Handle per instance (NewAVL, NewGraph, NewHeap,
// NewHashTable, NewList) and routes procedural calls such as AVLInsert or
// GraphDijkstra to it. Destroy clears the instance and retires the handle;
// handles are never reused, so a stale handle yields ErrUnknownHandle.
// Using a handle with another structure's operation yields ErrKindMismatch.
//
// Handles live in a concurrent map and each instance has its own mutex:
// calls on distinct handles proceed in parallel.
package bridge

package model

import "sync/atomic"

// EntityID identifies a unit owned by the host ECS. The engine treats it as
// an opaque, comparable token — it never interprets the numeric value.
type EntityID uint32

// entityIDCounter hands out process-local IDs for hosts that have no ECS of
// their own (the in-memory world, tests).
var entityIDCounter atomic.Uint32

// NextEntityID returns a fresh process-unique EntityID.
// Thread-safe via atomic increment.
func NextEntityID() EntityID {
	return EntityID(entityIDCounter.Add(1))
}

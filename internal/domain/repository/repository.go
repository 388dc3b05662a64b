// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer: every storage backend (in-memory, relational,
// document) implements them interchangeably.
//
// Mutations are deliberately narrow and named for their business purpose
// (UpdateOrderPayment, UpdateProjectStatus, ...). No backend exposes a
// generic "update any field" operation; callers get exactly the transitions
// the domain permits.
package repository

import "agency/internal/errors"

// ErrNotSupported is returned by a backend that does not implement an entity
// family (the document backend lacks chat and change requests). Callers must
// treat it as a hard capability gap and propagate it, never swallow it into
// an empty result.
var ErrNotSupported = errors.New("operation not supported by this storage backend")

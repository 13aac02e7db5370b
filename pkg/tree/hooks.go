package tree

import (
	"context"
	"time"
)

// VersionEvent describes a version directory that passed every check.
type VersionEvent struct {
	Environment string // empty for the flat versions layout
	Path        string
	Version     uint64
}

// WalkEvent describes a finished walk.
type WalkEvent struct {
	Root     string
	Layout   Layout
	Versions int // version directories validated before the walk ended
	Duration time.Duration
	Err      error
	Kind     Kind // empty on success
}

// Hooks defines callbacks for walker observability.
type Hooks struct {
	OnVersionValidated func(context.Context, *VersionEvent)
	OnWalkComplete     func(context.Context, *WalkEvent)
}

// Package repository defines the durable key-value persistence contract the
// engine writes its snapshots through, plus the local implementations.
package repository

import "context"

// Kind names one persisted snapshot namespace.
type Kind string

const (
	KindTasks        Kind = "tasks"
	KindStudyLogs    Kind = "studyLogs"
	KindSettings     Kind = "settings"
	KindGamification Kind = "gamification"
	KindQuests       Kind = "quests"
)

// Store persists JSON-serializable snapshots by kind, scoped to one user
// identifier chosen at construction (empty id means the global scope).
type Store interface {
	// Load unmarshals the stored value for kind into v. The boolean reports
	// whether a value existed.
	Load(ctx context.Context, kind Kind, v any) (bool, error)
	// Save marshals v and stores it under kind, replacing any prior value.
	Save(ctx context.Context, kind Kind, v any) error
	// Remove deletes the stored value for kind, if any.
	Remove(ctx context.Context, kind Kind) error
}

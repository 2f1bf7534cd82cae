// Package sessions keeps wizard state between page requests.
package sessions

import (
	"context"
	"errors"

	"rightimage-site/pkg/wizard"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("wizard session not found")

// Store persists wizard state for the lifetime of a page session.
type Store interface {
	Get(ctx context.Context, id string) (*wizard.State, error)
	Save(ctx context.Context, state *wizard.State) error
	Delete(ctx context.Context, id string) error
}

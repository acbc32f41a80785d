// Package identity issues the anonymous, client-held identifier attached to
// every submission from one browser profile (or one CLI user).
//
// The identifier is "anon_" followed by a random UUID. It lives in a durable
// Storage owned by the client; the server never keeps a registry of ids.
package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Prefix tags every anonymous id.
const Prefix = "anon_"

var (
	// ErrNotFound is returned by Storage.Load when no id has been persisted yet.
	ErrNotFound = errors.New("anonymous id not found")
	// ErrUnavailable means the storage cannot be used in the current context.
	ErrUnavailable = errors.New("identity storage unavailable")
)

// Storage is the durable client-side key holding the anonymous id.
type Storage interface {
	Load(ctx context.Context) (string, error)
	Store(ctx context.Context, id string) error
	Remove(ctx context.Context) error
}

// NewAnonymousID mints a fresh identifier.
func NewAnonymousID() string {
	return Prefix + uuid.NewString()
}

// IsAnonymousID reports whether id has the shape of a minted identifier.
func IsAnonymousID(id string) bool {
	rest, ok := strings.CutPrefix(id, Prefix)
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

// Resolve returns the persisted id, minting and persisting one when absent.
// minted reports whether this call created the id.
func Resolve(ctx context.Context, s Storage) (id string, minted bool, err error) {
	if s == nil {
		return "", false, ErrUnavailable
	}
	id, err = s.Load(ctx)
	switch {
	case err == nil && IsAnonymousID(id):
		return id, false, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return "", false, err
	}

	id = NewAnonymousID()
	if err := s.Store(ctx, id); err != nil {
		return "", false, err
	}
	return id, true, nil
}

// GetAnonymousUserID returns the id for this storage scope, minting it on
// first use. It returns "" when the storage is unavailable; callers tolerate
// that value only until a usable storage is present.
func GetAnonymousUserID(ctx context.Context, s Storage) string {
	id, _, err := Resolve(ctx, s)
	if err != nil {
		return ""
	}
	return id
}

// ClearAnonymousUserID forgets the persisted id. The next Get mints a new one;
// earlier submissions stay attributed to the old id. A failed removal is
// logged on the default logger; callers that must report it use Storage.Remove.
func ClearAnonymousUserID(ctx context.Context, s Storage) {
	if s == nil {
		return
	}
	if err := s.Remove(ctx); err != nil {
		slog.WarnContext(ctx, "failed to clear anonymous identity", "error", err)
	}
}

// Package session owns the per-user chat session id shared with the workflow service.
package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"marketing-server/internal/observability"

	"github.com/google/uuid"
)

const (
	keyPrefix    = "session:"
	suffixLength = 9
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	ErrNotFound    = errors.New("session not found")
	ErrStorage     = errors.New("session storage failed")
	ErrMalformedID = errors.New("stored session id is malformed")
)

var idPattern = regexp.MustCompile(`^session_\d+_[0-9a-z]{9}$`)

// Storage persists session ids by key. SetIfAbsent must not overwrite an existing value.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
}

type Manager struct {
	storage Storage
	logger  *observability.Logger
	now     func() time.Time
}

func NewManager(storage Storage, logger *observability.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Resolve returns the user's session id, creating and storing one on first use. An existing id
// is never replaced; when two callers race, both get the id that was stored first. A stored value
// that is not a session id yields ErrMalformedID.
func (m *Manager) Resolve(ctx context.Context, userID uuid.UUID) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})
	key := keyPrefix + userID.String()

	existing, err := m.storage.Get(ctx, key)
	switch {
	case err == nil:
		return m.checkStored(ctx, existing)
	case !errors.Is(err, ErrNotFound):
		m.logger.Error(ctx, "failed to read session", err)
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	id, err := m.newID()
	if err != nil {
		return "", err
	}

	created, err := m.storage.SetIfAbsent(ctx, key, id)
	if err != nil {
		m.logger.Error(ctx, "failed to store session", err)
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if created {
		m.logger.Info(observability.WithFields(ctx, observability.Field{Key: "session_id", Value: id}), "created session")
		return id, nil
	}

	existing, err = m.storage.Get(ctx, key)
	if err != nil {
		m.logger.Error(ctx, "failed to read session after concurrent create", err)
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return m.checkStored(ctx, existing)
}

func (m *Manager) checkStored(ctx context.Context, id string) (string, error) {
	if !validID(id) {
		m.logger.Error(ctx, "stored session id is malformed", ErrMalformedID)
		return "", ErrMalformedID
	}
	return id, nil
}

// newID builds session_<unix-ms>_<9 base36 chars>.
func (m *Manager) newID() (string, error) {
	suffix := make([]byte, suffixLength)
	base := big.NewInt(int64(len(alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("failed to generate session id: %w", err)
		}
		suffix[i] = alphabet[n.Int64()]
	}
	return fmt.Sprintf("session_%d_%s", m.now().UnixMilli(), suffix), nil
}

// validID reports whether id has the session id format.
func validID(id string) bool {
	return idPattern.MatchString(id)
}

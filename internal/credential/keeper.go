package credential

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

// ErrInvalidKey is returned when a supplied key is too short to be real.
var ErrInvalidKey = errors.New("please enter a valid API key")

// minKeyLen is the shortest accepted key in characters; anything of 10
// characters or fewer is rejected.
const minKeyLen = 11

// Keeper is the persistence surface for a user-supplied key.
type Keeper struct {
	settings repository.SettingRepo
}

// NewKeeper creates a Keeper over local settings.
func NewKeeper(settings repository.SettingRepo) *Keeper {
	return &Keeper{settings: settings}
}

// ValidateKey trims raw and checks its length.
func ValidateKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if utf8.RuneCountInString(key) < minKeyLen {
		return "", ErrInvalidKey
	}
	return key, nil
}

// Save stores the trimmed key, replacing any previous one.
func (k *Keeper) Save(ctx context.Context, raw string) error {
	key, err := ValidateKey(raw)
	if err != nil {
		return err
	}
	return k.settings.Set(ctx, StoreKey, key)
}

// Clear removes the stored key. Clearing an absent key is not an error.
func (k *Keeper) Clear(ctx context.Context) error {
	return k.settings.Delete(ctx, StoreKey)
}

// Stored returns the persisted key, or nil when none is stored.
func (k *Keeper) Stored(ctx context.Context) (*domain.Setting, error) {
	s, err := k.settings.Get(ctx, StoreKey)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Mask hides all but the first four and last four characters of a key.
func Mask(key string) string {
	r := []rune(key)
	if len(r) <= 8 {
		return strings.Repeat("•", len(r))
	}
	return string(r[:4]) + strings.Repeat("•", 6) + string(r[len(r)-4:])
}

package repository

import (
	"context"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// SettingRepo persists local key/value settings.
type SettingRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

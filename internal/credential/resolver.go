// Package credential resolves and persists the API key used for the
// generative-AI service.
package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/pathwise/internal/repository"
)

// ErrNoCredential is returned when no resolver yields a key.
var ErrNoCredential = errors.New("no api key configured")

// StoreKey is the settings key the API key is persisted under.
const StoreKey = "gemini_api_key"

// EnvVars are the process environment variables consulted, in order.
var EnvVars = []string{"PATHWISE_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// Resolver is one source of the API key.
type Resolver interface {
	// Name identifies the source for status output.
	Name() string
	// Resolve returns the key and true, or false when the source has none.
	Resolve(ctx context.Context) (string, bool, error)
}

// Resolution is the key a Chain settled on and where it came from.
type Resolution struct {
	Value  string
	Source string
}

// Chain queries resolvers in order until one yields a non-empty key.
type Chain []Resolver

// DefaultChain orders the sources: locally stored key, build-time key,
// process environment.
func DefaultChain(settings repository.SettingRepo, buildKey string) Chain {
	return Chain{
		StoreResolver{Settings: settings},
		StaticResolver{Label: "build", Value: buildKey},
		EnvResolver{Vars: EnvVars},
	}
}

func (c Chain) Resolve(ctx context.Context) (Resolution, error) {
	for _, r := range c {
		v, ok, err := r.Resolve(ctx)
		if err != nil {
			return Resolution{}, fmt.Errorf("resolving api key from %s: %w", r.Name(), err)
		}
		v = strings.TrimSpace(v)
		if ok && v != "" {
			return Resolution{Value: v, Source: r.Name()}, nil
		}
	}
	return Resolution{}, ErrNoCredential
}

// StoreResolver reads the key persisted in local settings.
type StoreResolver struct {
	Settings repository.SettingRepo
}

func (StoreResolver) Name() string { return "local store" }

func (r StoreResolver) Resolve(ctx context.Context) (string, bool, error) {
	if r.Settings == nil {
		return "", false, nil
	}
	s, err := r.Settings.Get(ctx, StoreKey)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return s.Value, s.Value != "", nil
}

// StaticResolver yields a fixed value, such as one injected at build time.
type StaticResolver struct {
	Label string
	Value string
}

func (r StaticResolver) Name() string { return r.Label }

func (r StaticResolver) Resolve(context.Context) (string, bool, error) {
	return r.Value, r.Value != "", nil
}

// EnvResolver reads the first set variable from the process environment.
type EnvResolver struct {
	Vars   []string
	Lookup func(string) (string, bool) // nil uses os.LookupEnv
}

func (EnvResolver) Name() string { return "environment" }

func (r EnvResolver) Resolve(context.Context) (string, bool, error) {
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, name := range r.Vars {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapquery/pkg/core"
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

// Factory builds an unconnected adapter.
type Factory func(*slog.Logger) Adapter

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// ErrTypeRequired is returned by NewAdapter when the config names no adapter.
var ErrTypeRequired = errors.New("adapter type not specified")

// Register adds an adapter factory to the registry.
// Called by adapter implementations in their init() functions.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Get retrieves an adapter factory by name.
func Get(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// NewAdapter creates an unconnected adapter for cfg.Type. A nil logger
// gives the adapter a discard logger.
func NewAdapter(cfg core.AdapterConfig, logger *slog.Logger) (Adapter, error) {
	factory, err := lookup(cfg.Type)
	if err != nil {
		return nil, err
	}
	return factory(logger), nil
}

// DialectOf returns the dialect queries for the named adapter are
// translated with. No connection is made.
func DialectOf(name string) (*dialect.Dialect, error) {
	factory, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(nil).Dialect(), nil
}

func lookup(name string) (Factory, error) {
	if name == "" {
		return nil, ErrTypeRequired
	}
	factory, ok := Get(name)
	if !ok {
		return nil, &UnknownAdapterError{Type: name, Available: ListAdapters()}
	}
	return factory, nil
}

// ListAdapters returns all registered adapter names (sorted).
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an adapter type is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// UnknownAdapterError is returned when an unknown adapter type is requested.
type UnknownAdapterError struct {
	Type      string
	Available []string
}

func (e *UnknownAdapterError) Error() string {
	return fmt.Sprintf("unknown adapter type %q (available: %s; check target.type in leapquery.yaml)",
		e.Type, strings.Join(e.Available, ", "))
}

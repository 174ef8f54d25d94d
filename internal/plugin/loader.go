package plugin

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Factory builds a plugin unit. Returning an error marks the candidate as
// failed to load.
type Factory func() (types.Plugin, error)

// Candidate is a unit offered for registration. ID is the unit's
// identifier; its base name without extension becomes the registry key.
type Candidate struct {
	ID   string
	Load Factory
}

// Source lists plugin candidates in load order.
type Source interface {
	Candidates() []Candidate
}

// SourceFunc adapts a function to Source.
type SourceFunc func() []Candidate

// Candidates returns f().
func (f SourceFunc) Candidates() []Candidate {
	return f()
}

// catalog holds candidates provided at init time.
var catalog []Candidate

// Provide adds a candidate to the process-wide catalog. It is meant to be
// called from init functions and performs no work beyond recording the
// candidate; the factory runs only when Load is called.
func Provide(id string, load Factory) {
	catalog = append(catalog, Candidate{ID: id, Load: load})
}

// Catalog returns the candidates provided so far as a Source.
func Catalog() Source {
	return SourceFunc(func() []Candidate {
		out := make([]Candidate, len(catalog))
		copy(out, catalog)
		return out
	})
}

// Name derives a registry key from a candidate identifier: the base name,
// lowercased, with its extension removed.
func Name(id string) string {
	base := filepath.Base(strings.TrimSpace(id))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}

// isInitializer reports whether name belongs to a package initializer
// rather than an operation, e.g. "__init__" or "_setup".
func isInitializer(name string) bool {
	return strings.HasPrefix(name, "_")
}

// LoadOptions tunes Load.
type LoadOptions struct {
	// Disabled names are skipped without calling their factory.
	Disabled []string
}

func (o LoadOptions) disabled(name string) bool {
	for _, d := range o.Disabled {
		if strings.EqualFold(strings.TrimSpace(d), name) {
			return true
		}
	}
	return false
}

// Load registers every usable candidate from src into reg and returns the
// number registered. Candidates whose factory fails or panics are logged
// and skipped; Load itself never fails.
func Load(reg *Registry, src Source, logger *zap.Logger, opts LoadOptions) int {
	if logger == nil {
		logger = zap.NewNop()
	}
	loaded := 0
	for _, c := range src.Candidates() {
		name := Name(c.ID)
		switch {
		case name == "" || name == ".":
			logger.Error("failed to load plugin", zap.String("candidate", c.ID), zap.String("reason", "empty name"))
			continue
		case isInitializer(name):
			continue
		case opts.disabled(name):
			logger.Info("plugin disabled", zap.String("plugin", name))
			continue
		}

		unit, err := loadCandidate(c)
		if err != nil {
			logger.Error("failed to load plugin", zap.String("plugin", name), zap.Error(err))
			continue
		}
		reg.Register(name, unit)
		logger.Info("loaded plugin", zap.String("plugin", name))
		loaded++
	}
	logger.Info("plugins ready", zap.Int("loaded", loaded), zap.Int("registered", reg.Len()))
	return loaded
}

// loadCandidate runs the candidate factory, converting a panic into an error.
func loadCandidate(c Candidate) (unit types.Plugin, err error) {
	if c.Load == nil {
		return nil, fmt.Errorf("candidate %q has no factory", c.ID)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during load: %v", r)
		}
	}()
	return c.Load()
}

// Package resolver turns build-unit descriptor files into immutable
// resolved units, memoized by canonical path.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/engine/depgraph"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Config carries the collaborators and options for a Resolver.
type Config struct {
	Units        ports.UnitLoader
	Manifests    ports.ManifestLoader
	Inspector    ports.Inspector
	Orchestrator ports.Orchestrator
	Logger       ports.Logger
	Telemetry    ports.Telemetry

	// BuildMissing enables the restore/compile sequence for units whose
	// artifact or manifest is absent on disk.
	BuildMissing bool
}

// outcome is a completed resolution, successful or not. Failed outcomes are
// memoized too, so a failing unit is never retried within a run.
type outcome struct {
	unit *domain.Unit
	err  error
}

// chain tracks the descriptors one resolution call chain is still
// resolving. Pointer identity tells concurrent chains apart in the
// wait bookkeeping.
type chain struct {
	keys map[string]bool
}

func newChain() *chain {
	return &chain{keys: make(map[string]bool)}
}

// Resolver resolves unit descriptors recursively. It is safe for
// concurrent use: the memo table is mutex-guarded and computation is
// deduplicated per canonical path with single-flight semantics, so the
// orchestrator and the inspector run at most once per unit per run.
type Resolver struct {
	cfg Config

	mu     sync.Mutex
	memo   map[string]outcome
	flight singleflight.Group

	// flightMu guards the wait-for bookkeeping below. holders maps a
	// descriptor key to the chain currently computing its flight; waiting
	// maps a chain to the key it is blocked on. Together they detect
	// reference cycles that span chains, which single-flight would
	// otherwise turn into a deadlock.
	flightMu sync.Mutex
	holders  map[string]*chain
	waiting  map[*chain]string

	moduleMu    sync.Mutex
	moduleNames map[string]string
}

// New creates a Resolver.
func New(cfg Config) *Resolver {
	return &Resolver{
		cfg:         cfg,
		memo:        make(map[string]outcome),
		holders:     make(map[string]*chain),
		waiting:     make(map[*chain]string),
		moduleNames: make(map[string]string),
	}
}

// Resolve resolves the descriptor at path into a unit. The error reports
// why a unit is absent from analysis; it is already logged and the caller
// only needs to skip the unit. Repeated calls for the same path return the
// memoized outcome without side effects.
func (r *Resolver) Resolve(ctx context.Context, path string) (*domain.Unit, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to canonicalize unit path"), "path", path)
	}

	if o, ok := r.lookup(abs); ok {
		_, vtx := r.cfg.Telemetry.Record(ctx, "analyze "+filepath.Base(abs))
		vtx.Cached()
		vtx.Complete(o.err)
		return o.unit, o.err
	}

	return r.resolve(ctx, abs, newChain())
}

func (r *Resolver) lookup(path string) (outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.memo[memoKey(path)]
	return o, ok
}

// memoKey folds case so that the same descriptor reached through different
// spellings on case-insensitive filesystems resolves once.
func memoKey(path string) string {
	return strings.ToLower(filepath.Clean(path))
}

// resolve is the recursive entry point. The chain's key set turns a
// unit-reference cycle within one call chain into an error instead of
// unbounded recursion; beginWait catches the cycles that cross chains.
func (r *Resolver) resolve(ctx context.Context, path string, c *chain) (*domain.Unit, error) {
	key := memoKey(path)

	if c.keys[key] {
		return nil, zerr.With(domain.ErrUnitCycle, "path", path)
	}

	if o, ok := r.lookup(path); ok {
		return o.unit, o.err
	}

	if !r.beginWait(c, key) {
		// Another chain is computing this descriptor and is itself
		// blocked, directly or transitively, on one held by this chain.
		// Blocking here would deadlock both, so the edge fails instead.
		return nil, zerr.With(domain.ErrUnitCycle, "path", path)
	}
	defer r.endWait(c)

	v, err, _ := r.flight.Do(key, func() (any, error) {
		if o, ok := r.lookup(path); ok {
			return o.unit, o.err
		}

		r.beginWork(c, key)
		defer r.endWork(key)

		c.keys[key] = true
		defer delete(c.keys, key)

		unit, resolveErr := r.resolveUnit(ctx, path, c)
		if resolveErr != nil {
			if errors.Is(resolveErr, domain.ErrNoArtifact) {
				r.cfg.Logger.Info(fmt.Sprintf("skipping %s: no output artifact", path))
			} else {
				r.cfg.Logger.Warn(fmt.Sprintf("skipping %s: %v", path, resolveErr))
			}
		}

		r.mu.Lock()
		r.memo[key] = outcome{unit: unit, err: resolveErr}
		r.mu.Unlock()

		return unit, resolveErr
	})

	unit, _ := v.(*domain.Unit)
	return unit, err
}

// beginWait records that c is about to block on key and reports whether
// blocking is safe. It walks the holder and waiting maps from key; reaching
// a key held by c itself means the in-flight resolutions form a cycle. The
// check and the registration share one critical section, so of two chains
// racing into opposite ends of a cycle exactly one is refused.
func (r *Resolver) beginWait(c *chain, key string) bool {
	r.flightMu.Lock()
	defer r.flightMu.Unlock()

	next := key
	for {
		holder, held := r.holders[next]
		if !held {
			break
		}
		if holder == c {
			return false
		}
		blockedOn, isWaiting := r.waiting[holder]
		if !isWaiting {
			break
		}
		next = blockedOn
	}

	r.waiting[c] = key
	return true
}

func (r *Resolver) endWait(c *chain) {
	r.flightMu.Lock()
	delete(r.waiting, c)
	r.flightMu.Unlock()
}

// beginWork marks c as the chain computing key's flight. The chain stops
// counting as a waiter while it works.
func (r *Resolver) beginWork(c *chain, key string) {
	r.flightMu.Lock()
	r.holders[key] = c
	delete(r.waiting, c)
	r.flightMu.Unlock()
}

func (r *Resolver) endWork(key string) {
	r.flightMu.Lock()
	delete(r.holders, key)
	r.flightMu.Unlock()
}

// resolveUnit performs the full resolution of a single descriptor. Any
// panic is converted into an error at this boundary so one broken unit
// cannot abort its siblings or ancestors.
func (r *Resolver) resolveUnit(ctx context.Context, path string, c *chain) (unit *domain.Unit, err error) {
	defer func() {
		if p := recover(); p != nil {
			unit = nil
			err = zerr.With(zerr.With(domain.ErrResolveFailed, "panic", fmt.Sprint(p)), "path", path)
		}
	}()

	ctx, vtx := r.cfg.Telemetry.Record(ctx, "analyze "+filepath.Base(path))
	defer func() { vtx.Complete(err) }()

	file, err := r.cfg.Units.Load(path)
	if err != nil {
		return nil, err
	}

	artifact := file.ArtifactPath()
	if artifact == "" {
		return nil, zerr.With(domain.ErrNoArtifact, "path", path)
	}

	restored := false
	if _, statErr := os.Stat(artifact); statErr != nil {
		if !r.cfg.BuildMissing {
			return nil, zerr.With(domain.ErrArtifactMissing, "artifact", artifact)
		}
		if restoreErr := r.cfg.Orchestrator.Restore(ctx, file); restoreErr != nil {
			return nil, zerr.With(zerr.With(domain.ErrRestoreFailed, "cause", restoreErr.Error()), "path", path)
		}
		restored = true
		if compileErr := r.cfg.Orchestrator.Compile(ctx, file); compileErr != nil {
			return nil, zerr.With(zerr.With(domain.ErrCompileFailed, "cause", compileErr.Error()), "path", path)
		}
	}

	info, err := r.cfg.Inspector.Inspect(artifact)
	if err != nil {
		return nil, zerr.With(err, "artifact", artifact)
	}
	refs := domain.NewRefSet(info.References...)

	var direct []string
	for _, lib := range file.Libs {
		if !lib.Implicit {
			direct = append(direct, lib.Name)
		}
	}

	var unitRefs []domain.UnitRef
	for _, include := range file.Units {
		target := include
		if !filepath.IsAbs(target) {
			target = filepath.Join(file.Dir(), include)
		}
		sub, subErr := r.resolve(ctx, target, c)
		if subErr != nil {
			// The referenced unit logged its own failure; drop the edge.
			continue
		}
		unitRefs = append(unitRefs, domain.UnitRef{Target: sub, Include: include})
	}

	if file.Kind.RequiresTransitiveBinaries() {
		for _, ref := range unitRefs {
			refs.Union(ref.Target.Refs)
		}
	}

	var pkgBinaries map[string]*domain.RefSet
	if len(file.Packages) > 0 {
		manifest, manifestErr := r.loadManifest(ctx, file, restored)
		if manifestErr != nil {
			return nil, manifestErr
		}
		pkgBinaries = depgraph.Closure(r.closureNodes(manifest))
	}

	return &domain.Unit{
		Path:            file.Path,
		Kind:            file.Kind,
		Identity:        info.Identity,
		Refs:            refs,
		DirectRefs:      direct,
		UnitRefs:        unitRefs,
		PackageRefs:     file.Packages,
		PackageBinaries: pkgBinaries,
	}, nil
}

// loadManifest reads the unit's package manifest, restoring once on demand
// when it is missing. A restore already performed for the artifact is not
// repeated.
func (r *Resolver) loadManifest(ctx context.Context, file *domain.UnitFile, restored bool) (*domain.Manifest, error) {
	path := file.LockfilePath()

	manifest, err := r.cfg.Manifests.Load(path, file.Target)
	if err == nil || !errors.Is(err, domain.ErrManifestMissing) {
		return manifest, err
	}
	if !r.cfg.BuildMissing {
		return nil, err
	}

	if !restored {
		if restoreErr := r.cfg.Orchestrator.Restore(ctx, file); restoreErr != nil {
			return nil, zerr.With(zerr.With(domain.ErrRestoreFailed, "cause", restoreErr.Error()), "path", file.Path)
		}
	}
	return r.cfg.Manifests.Load(path, file.Target)
}

// closureNodes maps manifest packages onto closure input, resolving each
// module path to its binary name and dropping placeholder modules.
func (r *Resolver) closureNodes(manifest *domain.Manifest) []depgraph.Node {
	nodes := make([]depgraph.Node, 0, len(manifest.Packages))
	for _, pkg := range manifest.Packages {
		binaries := domain.NewRefSet()
		for _, module := range pkg.Modules {
			if domain.IsPlaceholderModule(module) {
				continue
			}
			binaries.Add(r.moduleName(manifest.Stores, module))
		}
		nodes = append(nodes, depgraph.Node{
			ID:           pkg.ID,
			Binaries:     binaries,
			Dependencies: pkg.Dependencies,
		})
	}
	return nodes
}

// moduleName resolves a manifest module path to the binary name it provides:
// the oracle-reported identity of the file under the first store root that
// has it, falling back to the path's base name.
func (r *Resolver) moduleName(stores []string, module string) string {
	cacheKey := strings.ToLower(module)

	r.moduleMu.Lock()
	if name, ok := r.moduleNames[cacheKey]; ok {
		r.moduleMu.Unlock()
		return name
	}
	r.moduleMu.Unlock()

	name := filepath.Base(module)
	for _, store := range stores {
		full := filepath.Join(store, module)
		if _, err := os.Stat(full); err != nil {
			continue
		}
		if info, err := r.cfg.Inspector.Inspect(full); err == nil && info.Identity != "" {
			name = info.Identity
		}
		break
	}

	r.moduleMu.Lock()
	r.moduleNames[cacheKey] = name
	r.moduleMu.Unlock()
	return name
}

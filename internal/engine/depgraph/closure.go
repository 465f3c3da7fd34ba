// Package depgraph computes which binary modules are reachable through each
// package of a resolved manifest.
package depgraph

import (
	"strings"

	"go.trai.ch/trim/internal/core/domain"
)

// Node is one package prepared for closure computation. Binaries holds the
// names of the binary modules the package contributes directly; placeholder
// modules must already be filtered out.
type Node struct {
	ID           string
	Binaries     *domain.RefSet
	Dependencies []string
}

// Closure returns, for every package reachable from at least one
// binary-contributing package (including the contributor itself), the union
// of all binaries reachable through it. Packages that neither contribute
// binaries nor depend, directly or transitively, on a contributing package
// are absent from the map; the analyzer reads that absence as "nothing to
// check" rather than "unused".
//
// The graph is walked in reverse: an edge dependency -> dependent is
// followed outward from each contributing package, so a package inherits
// the binaries of everything it pulls in. Each start node runs its own
// breadth-first traversal with a private visited set, which terminates even
// when the manifest contains dependency cycles. Keys are lower-cased
// package ids.
func Closure(nodes []Node) map[string]*domain.RefSet {
	// dependency id -> ids of packages that directly depend on it
	dependents := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		id := strings.ToLower(n.ID)
		for _, dep := range n.Dependencies {
			key := strings.ToLower(dep)
			dependents[key] = append(dependents[key], id)
		}
	}

	result := make(map[string]*domain.RefSet)
	for _, start := range nodes {
		if start.Binaries.Len() == 0 {
			continue
		}

		visited := make(map[string]bool)
		queue := []string{strings.ToLower(start.ID)}
		visited[queue[0]] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			set, ok := result[current]
			if !ok {
				set = domain.NewRefSet()
				result[current] = set
			}
			set.Union(start.Binaries)

			for _, dependent := range dependents[current] {
				if !visited[dependent] {
					visited[dependent] = true
					queue = append(queue, dependent)
				}
			}
		}
	}

	return result
}

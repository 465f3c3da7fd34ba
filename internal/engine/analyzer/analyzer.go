// Package analyzer applies the unused-dependency decision rules to a
// resolved unit.
package analyzer

import "go.trai.ch/trim/internal/core/domain"

// Analyze classifies every declared dependency of the unit and returns one
// diagnostic per unused item, in declaration order.
//
// A direct reference is unused when its name is not in the unit's binary
// reference set. A unit reference is unused when the target's identity is
// not in the set; for kinds that require transitively-present binaries the
// set was already widened with each target's own references during
// resolution, which keeps references that only satisfy a deeper consumer
// from being flagged. A package reference with no closure entry contributes
// nothing compiled (tooling, generators) and is skipped silently; otherwise
// it is unused when none of its reachable binaries appear in the set.
func Analyze(unit *domain.Unit) []domain.Diagnostic {
	var diags []domain.Diagnostic

	for _, name := range unit.DirectRefs {
		if !unit.Refs.Contains(name) {
			diags = append(diags, domain.Diagnostic{
				UnitPath: unit.Path,
				Kind:     domain.DiagLib,
				Name:     name,
			})
		}
	}

	for _, ref := range unit.UnitRefs {
		if !unit.Refs.Contains(ref.Target.Identity) {
			diags = append(diags, domain.Diagnostic{
				UnitPath: unit.Path,
				Kind:     domain.DiagUnit,
				Name:     ref.Include,
			})
		}
	}

	for _, pkg := range unit.PackageRefs {
		binaries := unit.BinariesFor(pkg)
		if binaries == nil {
			continue
		}
		if !unit.Refs.ContainsAny(binaries) {
			diags = append(diags, domain.Diagnostic{
				UnitPath: unit.Path,
				Kind:     domain.DiagPackage,
				Name:     pkg,
			})
		}
	}

	return diags
}

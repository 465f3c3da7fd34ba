package app

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// renderDiagnostics writes one line per diagnostic, grouped by unit path.
// Paths are shown relative to root when they live below it.
func renderDiagnostics(w io.Writer, root string, diags []domain.Diagnostic) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].UnitPath < diags[j].UnitPath
	})

	for _, d := range diags {
		path := d.UnitPath
		if rel, err := filepath.Rel(absRoot, d.UnitPath); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
		if _, err := fmt.Fprintf(w, "%s: unused %s reference %q\n", path, d.Kind, d.Name); err != nil {
			return zerr.Wrap(err, "failed to write diagnostic")
		}
	}
	return nil
}

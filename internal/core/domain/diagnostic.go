package domain

import "fmt"

// DiagnosticKind identifies which declared item list a diagnostic is about.
type DiagnosticKind string

const (
	// DiagLib flags an unused direct binary reference.
	DiagLib DiagnosticKind = "lib"
	// DiagUnit flags an unused unit-to-unit reference.
	DiagUnit DiagnosticKind = "unit"
	// DiagPackage flags an unused package reference.
	DiagPackage DiagnosticKind = "package"
)

// Diagnostic reports one declared dependency that the unit's compiled
// output does not need. Name is the declared item name, or the include
// string as written for unit references.
type Diagnostic struct {
	UnitPath string
	Kind     DiagnosticKind
	Name     string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: unused %s reference %q", d.UnitPath, d.Kind, d.Name)
}

// assets/embed.go
//
// Embedded default grammar and conflation table, used when no grammar file
// or database is configured.

package assets

import (
	"embed"
)

//go:embed cfg.csv conflation.yaml
var FS embed.FS

// GrammarCSV returns the default grammar rows.
func GrammarCSV() ([]byte, error) {
	return FS.ReadFile("cfg.csv")
}

// ConflationYAML returns the default conflation table.
func ConflationYAML() ([]byte, error) {
	return FS.ReadFile("conflation.yaml")
}

// Package patches holds the per-dialect step tables that inject remote bundle
// loading into generated native entry points. Each table is plain data run by
// the generic splice engine.
package patches

import (
	"pushup.dev/pkg/pushup/internal/domain/splice"
	m "pushup.dev/pkg/pushup/internal/model"
)

var sequences = map[m.Dialect]splice.Sequence{
	m.DialectKotlin: kotlin,
	m.DialectSwift:  swift,
}

// ForDialect returns the sequence for dialect, or false when the dialect has
// no sequence.
func ForDialect(dialect m.Dialect) (splice.Sequence, bool) {
	sequence, ok := sequences[dialect]
	return sequence, ok
}

// Dialects lists the dialects that have a sequence.
func Dialects() []m.Dialect {
	return []m.Dialect{m.DialectKotlin, m.DialectSwift}
}

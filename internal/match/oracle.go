package match

import (
	"sync"

	"chainflow/internal/typeflow"
)

// Oracle answers whether a value of one type implicitly converts to another.
// Implementations must be safe for concurrent read-only queries.
type Oracle interface {
	ImplicitlyConvertible(from, to typeflow.TypeID) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(from, to typeflow.TypeID) bool

// ImplicitlyConvertible implements Oracle.
func (f OracleFunc) ImplicitlyConvertible(from, to typeflow.TypeID) bool {
	return f(from, to)
}

// None knows no conversions.
var None Oracle = OracleFunc(func(_, _ typeflow.TypeID) bool { return false })

// Conversion declares that From implicitly converts to To.
type Conversion struct {
	From typeflow.TypeID
	To   typeflow.TypeID
}

// Table is a fixed set of direct conversions. It is not transitive.
type Table struct {
	pairs map[Conversion]struct{}
}

// NewTable creates a Table from the given conversions.
func NewTable(conversions ...Conversion) *Table {
	t := &Table{pairs: make(map[Conversion]struct{}, len(conversions))}
	for _, c := range conversions {
		t.pairs[c] = struct{}{}
	}

	return t
}

// ImplicitlyConvertible implements Oracle.
func (t *Table) ImplicitlyConvertible(from, to typeflow.TypeID) bool {
	_, ok := t.pairs[Conversion{From: from, To: to}]
	return ok
}

// Len returns the number of declared conversions.
func (t *Table) Len() int {
	return len(t.pairs)
}

// Any combines oracles; a conversion exists if any of them knows it.
// Nil entries are skipped.
func Any(oracles ...Oracle) Oracle {
	var list []Oracle

	for _, o := range oracles {
		if o != nil {
			list = append(list, o)
		}
	}

	return OracleFunc(func(from, to typeflow.TypeID) bool {
		for _, o := range list {
			if o.ImplicitlyConvertible(from, to) {
				return true
			}
		}

		return false
	})
}

// Memoized caches the answers of another oracle per (from, to) pair.
type Memoized struct {
	inner Oracle
	cache sync.Map // Conversion -> bool
}

// Memoize wraps an oracle with a concurrency-safe cache. The wrapped oracle
// must be deterministic.
func Memoize(inner Oracle) *Memoized {
	if inner == nil {
		inner = None
	}

	return &Memoized{inner: inner}
}

// ImplicitlyConvertible implements Oracle.
func (m *Memoized) ImplicitlyConvertible(from, to typeflow.TypeID) bool {
	key := Conversion{From: from, To: to}
	if v, ok := m.cache.Load(key); ok {
		return v.(bool)
	}

	v := m.inner.ImplicitlyConvertible(from, to)
	m.cache.Store(key, v)

	return v
}

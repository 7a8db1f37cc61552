// Package sqltypes provides base adapters for persisting custom Go value types
// in single relational columns through database/sql.
//
// An adapter couples a domain value with the two primitives every column
// mapping needs: decode a raw driver value into the domain type, and encode
// the domain type back into a driver-supported value. Everything else the
// database/sql contract and common ORM plumbing ask for (null handling,
// equality for dirty-checking, deep copies, cache snapshots, JSON marshaling,
// loggable strings) is derived from those two primitives.
//
// Basic Usage
//
//	type moodCodec struct{}
//
//	func (moodCodec) DecodeColumn(src any) (Mood, error) { ... }
//	func (moodCodec) EncodeColumn(v Mood) (driver.Value, error) { ... }
//
//	type MoodColumn struct {
//	    sqltypes.Immutable[Mood, moodCodec]
//	}
//
// A MoodColumn can then be used directly as a struct field, a query argument
// and a scan destination:
//
//	row := db.QueryRow(`SELECT mood FROM entries WHERE id = $1`, id)
//	var m MoodColumn
//	err := row.Scan(&m)
//
// # Immutable vs Mutable
//
// Immutable adapters treat the contained value as a constant: DeepCopy is the
// identity and callers are trusted never to mutate the value in place. Mutable
// adapters are for values with interior state (documents, maps, slices);
// DeepCopy produces a detached clone through the configured mapper, or through
// the codec's CloneColumn when it provides one.
//
// # Null handling
//
// A SQL NULL scans to an adapter with Valid=false and a zero value; an invalid
// adapter writes SQL NULL. This mirrors the null.String/null.Time conventions
// from github.com/aarondl/null.
//
// # Column registry
//
// Concrete adapter packages register a ColumnType (name, DDL fragment,
// optional Go type) at init time, globally or scoped to a dialect. Lookups
// read an atomically swapped snapshot and take no locks; see Registry.
//
// The concrete column types live in the columns/common and columns/postgres
// subpackages. Pluggable serialization lives in the mapper subpackage, and
// file/environment configuration in the config subpackage.
package sqltypes

// SPDX-License-Identifier: MIT
// Package: matchkit/builder
//
// id_fn.go - vertex ID schemes. Every scheme is pure: the same index always
// yields the same id.

package builder

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

// IDFn generates a vertex identifier from its zero-based index.
// Implementations panic on indices outside their domain.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0,25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns idx in base 36: 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns idx in lowercase hexadecimal. Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix + decimal index: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// idSchemes maps scheme names accepted by IDSchemeByName.
var idSchemes = map[string]IDFn{
	"decimal": DefaultIDFn,
	"letters": SymbolIDFn,
	"excel":   ExcelColumnIDFn,
	"alnum":   AlphanumericIDFn,
	"hex":     HexIDFn,
}

// IDSchemeNames lists the names accepted by IDSchemeByName, sorted.
func IDSchemeNames() []string {
	names := make([]string, 0, len(idSchemes))
	for name := range idSchemes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IDSchemeByName resolves a scheme name ("decimal", "letters", "excel",
// "alnum", "hex").
// Errors: ErrOptionViolation for unknown names.
func IDSchemeByName(name string) (IDFn, error) {
	fn, ok := idSchemes[name]
	if !ok {
		return nil, errors.Wrapf(ErrOptionViolation, "unknown id scheme %q (want one of %v)", name, IDSchemeNames())
	}

	return fn, nil
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// WithAlphanumericIDs sets the ID scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption {
	return WithIDScheme(AlphanumericIDFn)
}

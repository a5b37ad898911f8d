package symbols

import (
	"fmt"

	"github.com/dwislpy/dwislpyc/common"
)

// SymbolKind is the role a SymbolInfo plays within its table (spec.md 3,
// "Symbol Info").
type SymbolKind int

const (
	Local SymbolKind = iota
	Formal
	Temp
)

// SymbolInfo describes one entry of a SymT: its kind, declared type, and (for
// locals/formals) its ordinal slot in the table's insertion order.
type SymbolInfo struct {
	Kind SymbolKind
	Type common.Type
	Slot int
}

// SymT is a symbol table (spec.md 3, "Symbol Table (SymT)"): a scope
// container for one function or for the global scope. DwiSlpy has no nested
// block scopes, so lookups never walk outward past a table's own entries
// except via the explicit global parent link used for string interning.
type SymT struct {
	// byName holds every local/formal entry, keyed by name.
	byName map[string]*SymbolInfo

	// order records names in insertion order: formals first (if `add_formal`
	// is always called before `add_local`, as spec.md 6 requires of the
	// parser's prepared SymT), locals after, each group in the order added.
	order []string

	arity int

	// mintNext is this table's private counter for temp/label minting (I2):
	// unique within this table by construction, which is sufficient since
	// IR emitted from one definition only ever references names minted in
	// that definition's own table.
	mintNext int

	// parent is the global table's string pool, shared by every per-function
	// table (spec.md 3, "an optional parent pointer to the global table").
	parent *SymT

	// strings interns string literal content to labels. Only meaningful on
	// the global table; per-function tables delegate to parent.strings.
	strings map[string]string
}

// NewSymT creates an empty symbol table with no parent. Call SetParent to
// wire a per-function table to the global table that owns the string pool.
func NewSymT() *SymT {
	return &SymT{
		byName:  make(map[string]*SymbolInfo),
		strings: make(map[string]string),
	}
}

// SetParent wires this table to the global table. It is one-time: calling it
// twice is a programmer error and panics, since SymT construction never
// needs to re-parent a table.
func (st *SymT) SetParent(global *SymT) {
	if st.parent != nil {
		panic("symbols: SetParent called twice on the same SymT")
	}
	st.parent = global
}

// -----------------------------------------------------------------------------
// Formals and locals (I1, I4).

// AddFormal appends a new formal parameter, assigning it the next ordinal
// slot. It fails with ok=false if name is already present in this table (I1).
func (st *SymT) AddFormal(name string, ty common.Type) (SymbolInfo, bool) {
	if _, ok := st.byName[name]; ok {
		return SymbolInfo{}, false
	}

	info := SymbolInfo{Kind: Formal, Type: ty, Slot: len(st.order)}
	st.byName[name] = &info
	st.order = append(st.order, name)
	st.arity++
	return info, true
}

// AddLocal appends a new local variable, assigning it the next ordinal slot
// after all formals and previously-added locals. It fails with ok=false if
// name is already present in this table, whether as a formal or a local (I1).
func (st *SymT) AddLocal(name string, ty common.Type) (SymbolInfo, bool) {
	if _, ok := st.byName[name]; ok {
		return SymbolInfo{}, false
	}

	info := SymbolInfo{Kind: Local, Type: ty, Slot: len(st.order)}
	st.byName[name] = &info
	st.order = append(st.order, name)
	return info, true
}

// HasInfo reports whether name is declared in this table (no lexical walk:
// DwiSlpy has no nested block scopes).
func (st *SymT) HasInfo(name string) bool {
	_, ok := st.byName[name]
	return ok
}

// GetInfo returns the declared info for name in this table.
func (st *SymT) GetInfo(name string) (SymbolInfo, bool) {
	info, ok := st.byName[name]
	if !ok {
		return SymbolInfo{}, false
	}
	return *info, true
}

// GetFormal returns the name and info of the i'th formal (0-indexed, I4).
func (st *SymT) GetFormal(i int) (string, SymbolInfo, bool) {
	if i < 0 || i >= st.arity {
		return "", SymbolInfo{}, false
	}
	name := st.order[i]
	return name, *st.byName[name], true
}

// Arity returns the number of formals added to this table.
func (st *SymT) Arity() int {
	return st.arity
}

// Size returns the total number of locals plus formals added to this table.
func (st *SymT) Size() int {
	return len(st.order)
}

// Names returns every local/formal name in insertion order (formals first),
// the ordering contract that fixes the back-end's frame layout.
func (st *SymT) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// -----------------------------------------------------------------------------
// Fresh names (I2): temporaries, labels, and interned string literals.

// AddTemp mints a fresh temporary name of the given type and returns it. The
// temporary is not added to Names(): it carries a type but no user name.
func (st *SymT) AddTemp(ty common.Type) string {
	name := fmt.Sprintf("$t%d", st.mintNext)
	st.mintNext++
	st.byName[name] = &SymbolInfo{Kind: Temp, Type: ty}
	return name
}

// AddLabel mints a fresh label name. If hint is non-empty it is folded into
// the minted name (e.g. a function name used to make entry labels more
// readable in an IR dump); otherwise the label is a bare "$L<n>".
func (st *SymT) AddLabel(hint string) string {
	var name string
	if hint == "" {
		name = fmt.Sprintf("$L%d", st.mintNext)
	} else {
		name = fmt.Sprintf("$L%s_%d", hint, st.mintNext)
	}
	st.mintNext++
	return name
}

// AddString interns s in the global string pool and returns its label (I3):
// equal content always yields the same label, distinct content always
// yields distinct labels. Per-function tables delegate to their parent;
// calling this on a table with no parent and no pool of its own is a
// programmer error.
func (st *SymT) AddString(s string) string {
	pool := st
	if st.parent != nil {
		pool = st.parent
	}

	if lbl, ok := pool.strings[s]; ok {
		return lbl
	}

	lbl := fmt.Sprintf("$S%d", len(pool.strings))
	pool.strings[s] = lbl
	return lbl
}

// StringPool returns the interned string literals of the global table,
// mapping label to content, for the back-end to emit as static data.
func (st *SymT) StringPool() map[string]string {
	pool := st
	if st.parent != nil {
		pool = st.parent
	}

	out := make(map[string]string, len(pool.strings))
	for content, lbl := range pool.strings {
		out[lbl] = content
	}
	return out
}

package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is a named entry in the SymbolTable.
// The set of implementations is closed: *BuiltInType and *VariableSymbol.
type Symbol interface {
	Name() string
	symbol()
}

// BuiltInType is a language-reserved type name such as "int".
type BuiltInType struct {
	name string
}

// NewBuiltInType returns the built-in type called name.
func NewBuiltInType(name string) *BuiltInType { return &BuiltInType{name: name} }

func (t *BuiltInType) Name() string   { return t.name }
func (*BuiltInType) symbol()          {}
func (t *BuiltInType) String() string { return "builtin " + t.name }

// VariableSymbol is a declared variable or parameter.
// DeclaredType names a BuiltInType.
type VariableSymbol struct {
	name         string
	DeclaredType string
}

// NewVariableSymbol returns a variable called name of type declaredType.
func NewVariableSymbol(name, declaredType string) *VariableSymbol {
	return &VariableSymbol{name: name, DeclaredType: declaredType}
}

func (v *VariableSymbol) Name() string   { return v.name }
func (*VariableSymbol) symbol()          {}
func (v *VariableSymbol) String() string { return "var " + v.name + " " + v.DeclaredType }

// builtInTypes are registered by every new SymbolTable.
var builtInTypes = []string{"void", "int", "float", "double"}

// SymbolTable maps names to symbols in a single flat scope.
// Inserting a name that is already present replaces the old binding.
type SymbolTable struct {
	symbols map[string]Symbol
}

// NewSymbolTable returns a table pre-populated with the built-in types.
func NewSymbolTable() *SymbolTable {
	s := &SymbolTable{symbols: make(map[string]Symbol)}
	s.initBuiltIns()
	return s
}

func (s *SymbolTable) initBuiltIns() {
	for _, name := range builtInTypes {
		s.Insert(NewBuiltInType(name))
	}
}

// Insert stores sym under its name, overwriting any previous entry.
func (s *SymbolTable) Insert(sym Symbol) {
	s.symbols[sym.Name()] = sym
}

// Lookup returns the symbol and whether it was found.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// LookupType returns the built-in type called name, if there is one.
func (s *SymbolTable) LookupType(name string) (*BuiltInType, bool) {
	sym, ok := s.symbols[name]
	if !ok {
		return nil, false
	}
	t, ok := sym.(*BuiltInType)
	return t, ok
}

// Len returns the number of bound names.
func (s *SymbolTable) Len() int { return len(s.symbols) }

// Names returns every bound name in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	for _, name := range s.Names() {
		switch sym := s.symbols[name].(type) {
		case *BuiltInType:
			fmt.Fprintf(&sb, "  %-20s  builtin type\n", name)
		case *VariableSymbol:
			fmt.Fprintf(&sb, "  %-20s  variable (Type: %s)\n", name, sym.DeclaredType)
		}
	}
	return sb.String()
}

// Package config converts declarative configuration trees into the
// interned-symbol form consumed when parameterizing spaces. It holds
// no state beyond the process-wide symbol table and performs no I/O;
// parsing a configuration file into a tree is the caller's job.
package config

import "sync"

// Symbol is an interned identifier. Two Symbols interned from equal
// strings are equal, so Symbols compare and hash as cheaply as ints.
// The zero Symbol is the empty identifier.
type Symbol int

var symbols = struct {
	sync.Mutex
	ids   map[string]Symbol
	names []string
}{
	ids:   map[string]Symbol{"": 0},
	names: []string{""},
}

// Intern returns the Symbol for name, creating it on first use.
// Intern is safe for concurrent use.
func Intern(name string) Symbol {
	symbols.Lock()
	defer symbols.Unlock()

	if sym, ok := symbols.ids[name]; ok {
		return sym
	}
	sym := Symbol(len(symbols.names))
	symbols.ids[name] = sym
	symbols.names = append(symbols.names, name)
	return sym
}

// Name returns the string the Symbol was interned from.
func (s Symbol) Name() string {
	symbols.Lock()
	defer symbols.Unlock()

	if int(s) < 0 || int(s) >= len(symbols.names) {
		return ""
	}
	return symbols.names[s]
}

func (s Symbol) String() string {
	return s.Name()
}

// Symbolize recursively converts a nested configuration mapping into
// symbol form: every key and every string-typed leaf value is
// replaced by its interned Symbol, and nested maps are converted in
// place structurally. All other values (numbers, booleans, arrays,
// nil) pass through unchanged at every depth. Symbolize is total over
// any tree built from maps, strings, and other values.
func Symbolize(tree map[string]interface{}) map[Symbol]interface{} {
	out := make(map[Symbol]interface{}, len(tree))
	for key, val := range tree {
		out[Intern(key)] = symbolizeValue(val)
	}
	return out
}

func symbolizeValue(val interface{}) interface{} {
	switch v := val.(type) {
	case map[string]interface{}:
		return Symbolize(v)
	case string:
		return Intern(v)
	default:
		return val
	}
}

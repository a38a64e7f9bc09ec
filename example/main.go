// Command example shows the intended calling pattern for gospace: a
// declarative catalog of spaces is parsed into a nested mapping,
// symbolized, and used to construct spaces that are then sampled and
// checked for membership. File-format parsing stays on the caller's
// side; the library itself sees only plain values.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/emer/etable/etensor"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/gospace"
	"github.com/samuelfneumann/gospace/config"
)

const catalog = `
spaces:
  position:
    dtype: float64
    shape: [2]
    low: -1.0
    high: 1.0
  gear:
    dtype: int64
    low: 0
    high: 2
  flags:
    dtype: bool
    shape: [3]
`

var dtypes = map[string]etensor.Type{
	"float64": etensor.FLOAT64,
	"float32": etensor.FLOAT32,
	"int64":   etensor.INT64,
	"int32":   etensor.INT32,
	"uint8":   etensor.UINT8,
	"bool":    etensor.BOOL,
}

func main() {
	var tree map[string]interface{}
	if err := yaml.Unmarshal([]byte(catalog), &tree); err != nil {
		log.Fatalf("could not parse catalog: %v", err)
	}
	cfg := config.Symbolize(tree)

	defs, ok := cfg[config.Intern("spaces")].(map[config.Symbol]interface{})
	if !ok {
		log.Fatal("catalog has no spaces section")
	}

	names := make([]string, 0, len(defs))
	for sym := range defs {
		names = append(names, sym.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		def, ok :=
			defs[config.Intern(name)].(map[config.Symbol]interface{})
		if !ok {
			log.Fatalf("space %v: definition is not a mapping", name)
		}

		space, err := buildSpace(def)
		if err != nil {
			log.Fatalf("space %v: %v", name, err)
		}
		fmt.Printf("%v: %v\n", name, space)

		sample, err := space.Sample()
		if err != nil {
			log.Fatalf("space %v: %v", name, err)
		}
		vals := make([]float64, sample[0].Len())
		for i := range vals {
			vals[i] = sample[0].FloatVal1D(i)
		}
		fmt.Printf("  sample: %v (contained: %v)\n", vals,
			space.Contains(sample[0]))
	}
}

func buildSpace(def map[config.Symbol]interface{}) (*gospace.Box, error) {
	dtypeSym, ok := def[config.Intern("dtype")].(config.Symbol)
	if !ok {
		return nil, fmt.Errorf("missing dtype")
	}
	dtype, ok := dtypes[dtypeSym.Name()]
	if !ok {
		return nil, fmt.Errorf("unknown dtype %v", dtypeSym)
	}

	var shape []int
	if dims, ok := def[config.Intern("shape")].([]interface{}); ok {
		for _, d := range dims {
			n, ok := d.(int)
			if !ok {
				return nil, fmt.Errorf("bad shape dimension %v", d)
			}
			shape = append(shape, n)
		}
	}

	return gospace.New(dtype, shape,
		def[config.Intern("low")], def[config.Intern("high")])
}

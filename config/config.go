// Package config reads catalogs of named structures and resolves structure
// names such as "zn:8" or "p256" to shared instances.
package config

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/algebra"
	"github.com/takakv/algebra/field"
	"github.com/takakv/algebra/group"
)

// GroupDef defines a finite group by its Cayley table.
type GroupDef struct {
	Table [][]int `toml:"table"`
}

// ProductDef defines a direct product of other named structures.
type ProductDef struct {
	Components []string `toml:"components"`
	Separator  *string  `toml:"separator"`
}

// Catalog holds user-defined structures.
//
//	[group.klein]
//	table = [[0,1,2,3],[1,0,3,2],[2,3,0,1],[3,2,1,0]]
//
//	[product.s2xs3]
//	components = ["sn:2", "sn:3"]
//	separator = ";"
type Catalog struct {
	Groups   map[string]GroupDef   `toml:"group"`
	Products map[string]ProductDef `toml:"product"`
}

// Load reads a catalog from the TOML file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Decode reads a catalog from r. Unknown keys and names that shadow a
// built-in structure are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(err, "decoding catalog")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("unknown key %q", keys[0].String())
	}
	for name := range c.Groups {
		if err := checkName(name); err != nil {
			return nil, err
		}
		if _, ok := c.Products[name]; ok {
			return nil, errors.Errorf("%q is defined as a group and a product", name)
		}
	}
	for name, p := range c.Products {
		if err := checkName(name); err != nil {
			return nil, err
		}
		if len(p.Components) == 0 {
			return nil, errors.Errorf("product %q has no components", name)
		}
	}
	log.Debugf("catalog with %d groups and %d products", len(c.Groups), len(c.Products))
	return &c, nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, ": \t") {
		return errors.Errorf("invalid structure name %q", name)
	}
	if _, ok := builtins[name]; ok {
		return errors.Errorf("%q shadows a built-in structure", name)
	}
	if _, ok := parametrised[name]; ok {
		return errors.Errorf("%q shadows a built-in structure", name)
	}
	return nil
}

// Names returns the catalog's structure names in order.
func (c *Catalog) Names() []string {
	var names []string
	for name := range c.Groups {
		names = append(names, name)
	}
	for name := range c.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtins = map[string]func() algebra.Structure{
	"z":            func() algebra.Structure { return algebra.NewIntegers() },
	"q":            func() algebra.Structure { return algebra.NewRationals() },
	"p256":         func() algebra.Structure { return group.P256() },
	"p384":         func() algebra.Structure { return group.P384() },
	"ristretto255": func() algebra.Structure { return group.Ristretto255() },
	"secp256k1":    func() algebra.Structure { return group.SecP256k1() },
	"ed25519":      func() algebra.Structure { return group.Ed25519() },
	"modp3072":     func() algebra.Structure { return group.RFC3526ModPGroup3072() },
	"bls12-377":    func() algebra.Structure { return field.BLS12377() },
	"bn254":        func() algebra.Structure { return field.BN254() },
}

var parametrised = map[string]func(arg string) (algebra.Structure, error){
	"zn": intArg(func(n int) (algebra.Structure, error) { return algebra.NewIntegersMod(n) }),
	"fp": intArg(func(p int) (algebra.Structure, error) { return algebra.NewPrimeField(p) }),
	"sn": intArg(func(n int) (algebra.Structure, error) { return algebra.NewSymmetricGroup(n) }),
	"strings": func(alphabet string) (algebra.Structure, error) {
		return algebra.NewStrings(alphabet)
	},
}

func intArg(f func(int) (algebra.Structure, error)) func(string) (algebra.Structure, error) {
	return func(arg string) (algebra.Structure, error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrap(err, "parameter")
		}
		return f(n)
	}
}

// Builtins returns the names of the built-in structures. Parametrised
// structures are listed as "name:ARG".
func Builtins() []string {
	var names []string
	for name := range builtins {
		names = append(names, name)
	}
	for name := range parametrised {
		names = append(names, name+":ARG")
	}
	sort.Strings(names)
	return names
}

// Registry resolves structure names. Every name resolves to a single
// instance, so elements obtained through the same name are compatible.
type Registry struct {
	catalog   *Catalog
	cache     map[string]algebra.Structure
	resolving map[string]bool
}

// NewRegistry returns a registry over the built-ins and c, which may be
// nil.
func NewRegistry(c *Catalog) *Registry {
	if c == nil {
		c = &Catalog{}
	}
	return &Registry{
		catalog:   c,
		cache:     make(map[string]algebra.Structure),
		resolving: make(map[string]bool),
	}
}

// Catalog returns the registry's catalog.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Resolve returns the structure named id.
func (r *Registry) Resolve(id string) (algebra.Structure, error) {
	id = strings.TrimSpace(id)
	if s, ok := r.cache[id]; ok {
		return s, nil
	}
	if r.resolving[id] {
		return nil, errors.Errorf("structure %q is defined in terms of itself", id)
	}
	r.resolving[id] = true
	defer delete(r.resolving, id)

	s, err := r.build(id)
	if err != nil {
		return nil, errors.Wrapf(err, "structure %q", id)
	}
	log.Debugf("resolved %q: abelian %t, group %t, ring %t", id, s.IsAbelian(), algebra.IsGroup(s), algebra.IsRing(s))
	r.cache[id] = s
	return s, nil
}

func (r *Registry) build(id string) (algebra.Structure, error) {
	if f, ok := builtins[id]; ok {
		return f(), nil
	}
	if name, arg, ok := strings.Cut(id, ":"); ok {
		f, ok := parametrised[name]
		if !ok {
			return nil, errors.New("unknown structure")
		}
		return f(arg)
	}
	if def, ok := r.catalog.Groups[id]; ok {
		return algebra.NewFiniteGroup(def.Table)
	}
	if def, ok := r.catalog.Products[id]; ok {
		return r.product(def)
	}
	return nil, errors.New("unknown structure")
}

// product builds a group product when every component is a group.
func (r *Registry) product(def ProductDef) (algebra.Structure, error) {
	cs := make([]algebra.Structure, len(def.Components))
	gs := make([]algebra.Group, 0, len(def.Components))
	for i, id := range def.Components {
		c, err := r.Resolve(id)
		if err != nil {
			return nil, err
		}
		cs[i] = c
		if g, ok := c.(algebra.Group); ok {
			gs = append(gs, g)
		}
	}

	var p *algebra.Product
	var s algebra.Structure
	if len(gs) == len(cs) {
		g, err := algebra.NewGroupProduct(gs...)
		if err != nil {
			return nil, err
		}
		p, s = &g.Product, g
	} else {
		g, err := algebra.NewProduct(cs...)
		if err != nil {
			return nil, err
		}
		p, s = g, g
	}
	if def.Separator != nil {
		p.SetSeparator(*def.Separator)
	}
	return s, nil
}

package config

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planetpath/pathsearch"
)

// defaultBiomeNames labels pathsearch.DefaultBiomeWeights in index order.
var defaultBiomeNames = []string{"barren", "tundra", "desert", "grassland", "forest", "wetland", "jungle"}

// BiomeTable maps biome names to weights. The position of a name in the
// table is its biome index.
type BiomeTable struct {
	m *orderedmap.OrderedMap[string, float64]
}

// NewBiomeTable returns an empty table.
func NewBiomeTable() *BiomeTable {
	return &BiomeTable{m: orderedmap.New[string, float64]()}
}

// DefaultBiomeTable returns the names of the standard seven biomes bound to
// pathsearch.DefaultBiomeWeights.
func DefaultBiomeTable() *BiomeTable {
	t := NewBiomeTable()
	for i, name := range defaultBiomeNames {
		t.m.Set(name, pathsearch.DefaultBiomeWeights[i])
	}
	return t
}

// Add appends name with weight w. Returns false if name already exists.
func (t *BiomeTable) Add(name string, w float64) bool {
	if _, ok := t.m.Get(name); ok {
		return false
	}
	t.m.Set(name, w)
	return true
}

// Len returns the number of biomes.
func (t *BiomeTable) Len() int { return t.m.Len() }

// Index returns the biome index of name.
func (t *BiomeTable) Index(name string) (int, bool) {
	i := 0
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		if p.Key == name {
			return i, true
		}
		i++
	}
	return 0, false
}

// Names returns the biome names in index order.
func (t *BiomeTable) Names() []string {
	out := make([]string, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Weights returns the weights in index order.
func (t *BiomeTable) Weights() pathsearch.BiomeWeights {
	out := make(pathsearch.BiomeWeights, 0, t.m.Len())
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// UnmarshalYAML decodes a mapping of name → weight, keeping document order.
func (t *BiomeTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("config: biomes must be a mapping (line %d)", value.Line)
	}
	fresh := NewBiomeTable()
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		var w float64
		if err := v.Decode(&w); err != nil {
			return errors.Wrapf(err, "config: biome %q", k.Value)
		}
		if !fresh.Add(k.Value, w) {
			return errors.Errorf("config: duplicate biome %q (line %d)", k.Value, k.Line)
		}
	}
	*t = *fresh

	return nil
}

// MarshalYAML encodes the table as an ordered mapping.
func (t *BiomeTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		var v yaml.Node
		if err := v.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p.Key}, &v)
	}
	return node, nil
}

// Package treemap builds country → sector → subsector value trees for the
// treemap visualisation.
package treemap

import (
	"encoding/json"
	"sort"

	"carbontradle.org/internal/dump"
	"carbontradle.org/internal/emissions"
)

// Node is one box of the treemap. Leaves have a nil Children slice and
// encode without a children key; inner nodes always encode one.
type Node struct {
	Name     string
	Value    float64
	Children []*Node
}

type nodeJSON struct {
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Children *[]*Node `json:"children,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{Name: n.Name, Value: n.Value}
	if n.Children != nil {
		out.Children = &n.Children
	}
	return json.Marshal(out)
}

func (n *Node) UnmarshalJSON(b []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*n = Node{Name: in.Name, Value: in.Value}
	if in.Children != nil {
		n.Children = *in.Children
	}
	return nil
}

// Totals maps sector to subsector to an emissions total.
type Totals map[string]map[string]float64

// BuildFromTotals builds the tree for one country. Subsectors with a total
// of zero or less are dropped, sectors left without subsectors are dropped,
// and every value is the sum of its surviving children. The root is always
// returned, with an empty child list when nothing survives.
func BuildFromTotals(name string, totals Totals) *Node {
	root := &Node{Name: name, Children: []*Node{}}

	for _, sector := range sortedKeys(totals) {
		node := &Node{Name: sector}
		subsectors := totals[sector]
		for _, subsector := range sortedKeys(subsectors) {
			v := subsectors[subsector]
			if v <= 0 {
				continue
			}
			node.Children = append(node.Children, &Node{Name: subsector, Value: v})
			node.Value += v
		}
		if len(node.Children) == 0 {
			continue
		}
		root.Children = append(root.Children, node)
		root.Value += node.Value
	}

	return root
}

// BuildFromDump builds the tree for one country of a scrape dump, summing
// the entries filed under code in every subsector.
func BuildFromDump(name string, country dump.CountryData, code string) *Node {
	totals := make(Totals, len(country))
	for sector, subsectors := range country {
		sums := make(map[string]float64, len(subsectors))
		for subsector, byCode := range subsectors {
			var sum float64
			for _, e := range byCode[code] {
				sum += e.Emissions()
			}
			sums[subsector] = sum
		}
		totals[sector] = sums
	}
	return BuildFromTotals(name, totals)
}

// BuildFromBreakdown builds the tree for the country code of an aggregated
// breakdown. An absent country yields an empty tree.
func BuildFromBreakdown(name string, b emissions.Breakdown, code string) *Node {
	sectors := b[code]
	totals := make(Totals, len(sectors))
	for sector, sb := range sectors {
		totals[sector] = sb.Subsectors
	}
	return BuildFromTotals(name, totals)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

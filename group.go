package binit

import "sort"

type (
	// BinGroups collects the latencies of binned timestamps, keyed by the
	// edge value of their assigned bin
	BinGroups struct {
		edges  Series
		groups map[float64]Series
	}
)

// GroupByBin assigns each timestamp to a bin under opt, discards timestamps
// attaching to no bin, and groups the survivors' latency to their edge by
// edge value. Relative input order is preserved within each group
func GroupByBin(
	timestamps, binEdges any, opt BinOptions,
) (*BinGroups, error) {
	ts, edges, err := alignable(timestamps, binEdges)
	if err != nil {
		return nil, err
	}

	groups := map[float64]Series{}
	var keys Series
	for i, j := range assignBins(ts, edges, opt) {
		if j == NoBin {
			continue
		}
		edge := edges[j]
		if _, ok := groups[edge]; !ok {
			keys = append(keys, edge)
		}
		groups[edge] = append(groups[edge], ts[i]-edge)
	}
	sort.Float64s(keys)

	return &BinGroups{
		edges:  keys,
		groups: groups,
	}, nil
}

// Len returns the number of distinct bins that received a timestamp
func (g *BinGroups) Len() int {
	return len(g.edges)
}

// Edges returns the distinct assigned edge values in ascending order
func (g *BinGroups) Edges() Series {
	return g.edges
}

// Latencies returns the latency group for the given edge value, reporting
// whether any timestamp was assigned to it
func (g *BinGroups) Latencies(edge float64) (Series, bool) {
	res, ok := g.groups[edge]
	return res, ok
}

package routing

import "github.com/metroplan/metroplan/pkg/mndf"

type frontierItem struct {
	station string

	score      float64
	transfers  int
	distance   float64
	travelTime int

	path []mndf.Edge
}

// better orders the frontier: lowest score first, ties broken by fewer
// transfers, then lower accumulated distance, then station identifier
// ordering. The tie-break chain keeps search results reproducible.
func (i *frontierItem) better(other *frontierItem) bool {
	if i.score != other.score {
		return i.score < other.score
	}
	if i.transfers != other.transfers {
		return i.transfers < other.transfers
	}
	if i.distance != other.distance {
		return i.distance < other.distance
	}

	return i.station < other.station
}

type frontier []*frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].better(f[j]) }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() any {
	old := *f
	item := old[len(old)-1]
	old[len(old)-1] = nil
	*f = old[:len(old)-1]

	return item
}

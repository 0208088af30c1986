package internal

import "sort"

// RoadShare is the distance driven on one road.
type RoadShare struct {
	Road   string
	Meters int64
}

type ByMeters []RoadShare

func (a ByMeters) Len() int { return len(a) }
func (a ByMeters) Less(i, j int) bool {
	if a[i].Meters == a[j].Meters {
		return a[i].Road < a[j].Road
	}

	return a[i].Meters > a[j].Meters
}
func (a ByMeters) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

// GetSortedRoadShares orders roads from the longest to the shortest stretch.
// Roads with equal length are ordered by name.
func GetSortedRoadShares(roadMeters map[string]int64) []RoadShare {
	shares := make([]RoadShare, len(roadMeters))
	i := 0
	for road, meters := range roadMeters {
		shares[i] = RoadShare{Road: road, Meters: meters}
		i++
	}

	sort.Sort(ByMeters(shares))
	return shares
}

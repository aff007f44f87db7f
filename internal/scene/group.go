package scene

import "go-well-viewer/internal/model"

// Group is the set of records sharing one key, in source row order
type Group struct {
	Key     string
	Records model.Dataset
}

// KeyFunc extracts a grouping key from a record
type KeyFunc func(model.Record) string

// ByWell groups records by well id
func ByWell(r model.Record) string { return r.WellID }

// ByLithology groups records by lithology id
func ByLithology(r model.Record) string { return r.LithologyID }

// GroupBy partitions the dataset by key. Groups come back in first-seen key
// order since that order becomes the legend order of the scene.
func GroupBy(ds model.Dataset, key KeyFunc) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, rec := range ds {
		k := key(rec)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}

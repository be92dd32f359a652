package report

// DayLabelFormat renders timestamps as long-form day labels in a fixed
// locale, e.g. "Monday, January 2, 2006".
const DayLabelFormat = "Monday, January 2, 2006"

// DayGroup is one calendar-day bucket of activity items.
type DayGroup struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// GroupByDay partitions a timestamp-sorted sequence into day buckets.
// Labels appear in first-occurrence order, so a descending input yields
// descending days, and flattening the groups reproduces the input exactly.
func GroupByDay(items []Item) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)
	for _, item := range items {
		label := item.Timestamp.Format(DayLabelFormat)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DayGroup{Label: label})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

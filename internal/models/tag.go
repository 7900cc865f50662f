package models

// Tag is a key/value metadata pair attached to a cloud resource.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TagKeys returns the keys of the given tags in input order, duplicates included.
func TagKeys(tags []Tag) []string {
	keys := make([]string, 0, len(tags))
	for _, t := range tags {
		keys = append(keys, t.Key)
	}
	return keys
}

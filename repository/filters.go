package repository

// allowFilters keeps only the filters whose key names a known column. Filter
// keys come straight from query parameters and end up in SQL as column names,
// so anything outside the repo's column list is dropped rather than
// interpolated.
func allowFilters(filters map[string]interface{}, allowed ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(filters))
	for k, v := range filters {
		for _, col := range allowed {
			if k == col {
				out[k] = v
				break
			}
		}
	}
	return out
}

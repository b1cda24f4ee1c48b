package fit

import "fmt"

// Group maps one replicate-group label to the ordered table columns it
// covers.
type Group struct {
	Label   string
	Columns []int
}

// ResolveGroups decides how the sample columns of a table map into
// replicate groups.
//
// Columns enter replicate-averaging mode (second return value true) only
// when replicateGroups is present, matches sampleNames in length, and uses
// strictly fewer distinct labels than there are columns, i.e. at least one
// group really contains two or more columns. Groups preserve the first-seen
// order of their labels and partition the columns with no overlaps.
//
// In every other situation each column forms its own group: the label is
// the column's own group tag when a one-to-one replicateGroups was
// supplied, otherwise the column's sample name, or "Group {i+1}" when the
// name is empty. A replicateGroups of the wrong length is a structural
// mismatch and is treated as absent.
//
// ResolveGroups is a pure function; callers that want the structural
// mismatch surfaced (the analyzer logs it) detect it themselves.
func ResolveGroups(sampleNames, replicateGroups []string) ([]Group, bool) {
	cols := len(sampleNames)

	tags := replicateGroups
	if len(tags) != cols {
		tags = nil
	}

	if tags != nil {
		seen := make(map[string]int, cols)
		ordered := make([]Group, 0, cols)
		for i, label := range tags {
			at, ok := seen[label]
			if !ok {
				seen[label] = len(ordered)
				ordered = append(ordered, Group{Label: label, Columns: []int{i}})
				continue
			}
			ordered[at].Columns = append(ordered[at].Columns, i)
		}

		// Averaging only kicks in when some label covers several columns.
		if len(ordered) > 0 && len(ordered) < cols {
			return ordered, true
		}
	}

	oneToOne := tags != nil

	groups := make([]Group, 0, cols)
	for i := range cols {
		groups = append(groups, Group{Label: columnLabel(sampleNames, tags, i, oneToOne), Columns: []int{i}})
	}

	return groups, false
}

// columnLabel names a single-column group: explicit tag, then sample name,
// then a positional default.
func columnLabel(sampleNames, tags []string, i int, oneToOne bool) string {
	if oneToOne && tags[i] != "" {
		return tags[i]
	}
	if sampleNames[i] != "" {
		return sampleNames[i]
	}

	return fmt.Sprintf("Group %d", i+1)
}

package match

import "github.com/ytpick/ytpick/internal/model"

// Table maps a supported height to the single best format record found for
// it. It is rebuilt from fresh metadata on every run and never persisted.
type Table map[int]model.Format

// BuildTable scans the format records once and returns the per-height best
// candidates. Records without a height, audio-only records, and heights
// outside the supported catalog are discarded. When several records share a
// height, the one with the strictly larger known filesize wins; ties and
// records without a known size keep the first-seen entry.
func BuildTable(formats []model.Format) Table {
	table := make(Table)
	for _, f := range formats {
		if f.Height == 0 || !f.HasVideo() {
			continue
		}
		if !model.IsSupportedHeight(f.Height) {
			continue
		}

		current, ok := table[f.Height]
		if !ok {
			table[f.Height] = f
			continue
		}
		if f.Filesize > 0 && f.Filesize > current.Filesize {
			table[f.Height] = f
		}
	}
	return table
}

// Heights returns the heights present in the table in catalog order.
func (t Table) Heights() []int {
	heights := make([]int, 0, len(t))
	for _, h := range model.SupportedHeights {
		if _, ok := t[h]; ok {
			heights = append(heights, h)
		}
	}
	return heights
}

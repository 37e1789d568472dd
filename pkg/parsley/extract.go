package parsley

import (
	"sort"
	"strings"
)

// AtomicParsley's dump mode produces two line formats, sometimes in the same
// stream: the raw atom listing
//
//	Atom "©nam" contains: Some Title
//
// and the human-readable listing
//
//	Title => Some Title
//
// Both are matched by substring, the way the formats have always been scraped;
// neither is versioned and whitespace varies between releases.

// labelOrder holds the labeled fields sorted longest-label-first so that a
// label containing another label ("Long Description" vs "Description") is
// attributed correctly.
var labelOrder = func() []fieldSpec {
	var specs []fieldSpec
	for _, fs := range fieldTable {
		if fs.label != "" {
			specs = append(specs, fs)
		}
	}
	sort.SliceStable(specs, func(i, j int) bool {
		return len(specs[i].label) > len(specs[j].label)
	})
	return specs
}()

// ParseDump parses AtomicParsley dump output into a Record. Unrecognized
// lines are skipped; when a field appears more than once the last value wins.
func ParseDump(output string) Record {
	rec := Record{}
	for _, line := range strings.Split(output, "\n") {
		if f, v, ok := matchAtom(line); ok {
			rec.set(f, v)
			continue
		}
		if f, v, ok := matchLabel(line); ok {
			rec.set(f, v)
		}
	}
	return rec
}

func matchAtom(line string) (Field, string, bool) {
	idx := strings.Index(line, "contains:")
	if idx < 0 {
		return "", "", false
	}
	for _, fs := range fieldTable {
		if fs.atom == "" {
			continue
		}
		if strings.Contains(line[:idx], `"`+fs.atom+`"`) {
			return fs.field, strings.TrimSpace(line[idx+len("contains:"):]), true
		}
	}
	return "", "", false
}

func matchLabel(line string) (Field, string, bool) {
	idx := strings.Index(line, "=>")
	if idx < 0 {
		return "", "", false
	}
	for _, fs := range labelOrder {
		if strings.Contains(line[:idx], fs.label) {
			return fs.field, strings.TrimSpace(line[idx+2:]), true
		}
	}
	return "", "", false
}

package main

import (
	"fmt"
	"strings"

	"github.com/draeician/ap/pkg/parsley"
)

// gatherOptions assembles the parsley options from the parsed flags. Empty
// field values count as unset, matching how the mode is determined.
func gatherOptions() (parsley.Options, error) {
	opts := parsley.Options{
		RawView:  rawView,
		Mirror:   mirrorPath,
		NoTools:  noTools,
		DeepScan: deepScan,
		Wipe:     wipe,
		Fields:   map[parsley.Field]string{},
	}

	if err := applySetPairs(opts.Fields, setPairs); err != nil {
		return opts, err
	}

	// Dedicated flags win over --set on conflict.
	dedicated := map[parsley.Field]string{
		parsley.FieldTitle:       flagTitle,
		parsley.FieldEpisode:     flagEpisode,
		parsley.FieldSeason:      flagSeason,
		parsley.FieldShow:        flagShow,
		parsley.FieldGenre:       flagGenre,
		parsley.FieldDescription: flagDesc,
		parsley.FieldLongDesc:    flagLongDesc,
		parsley.FieldURL:         flagURL,
		parsley.FieldAdvisory:    flagAdvisory,
		parsley.FieldYear:        flagYear,
		parsley.FieldIMDb:        flagIMDb,
		parsley.FieldTheTVDB:     flagTheTVDB,
	}
	for f, v := range dedicated {
		if v != "" {
			opts.Fields[f] = v
		}
	}

	return opts, nil
}

// applySetPairs parses repeated --set field=value arguments into fields.
func applySetPairs(fields map[parsley.Field]string, pairs []string) error {
	for _, kv := range pairs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q: want field=value", kv)
		}
		f, ok := parsley.FieldByName(name)
		if !ok {
			if s, found := parsley.SuggestField(name); found {
				return fmt.Errorf("unknown field %q (did you mean %q?)", name, string(s))
			}
			return fmt.Errorf("unknown field %q", name)
		}
		if value != "" {
			fields[f] = value
		}
	}
	return nil
}

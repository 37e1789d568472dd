// Package parsley builds AtomicParsley invocations and parses its metadata dumps.
package parsley

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field identifies a metadata field understood by this tool.
type Field string

const (
	FieldTitle        Field = "title"
	FieldShow         Field = "show"
	FieldSeason       Field = "season"
	FieldEpisode      Field = "episode"
	FieldGenre        Field = "genre"
	FieldDescription  Field = "desc"
	FieldLongDesc     Field = "longdesc"
	FieldURL          Field = "url"
	FieldYear         Field = "year"
	FieldAdvisory     Field = "advisory"
	FieldIMDb         Field = "imdb"
	FieldTheTVDB      Field = "thetvdb"
	FieldEncodingTool Field = "encodingTool"
)

// fieldSpec describes how one field appears in AtomicParsley's dump output
// and how it is written back.
type fieldSpec struct {
	field     Field
	atom      string // atom name in the raw dump, e.g. ©nam; empty if none
	label     string // label in the human-readable dump; empty if none
	flag      string // AtomicParsley write flag
	xidScheme string // non-empty for fields written as --xID Scheme=Value
	display   string // label for the friendly summary
}

// fieldTable is the single source of truth for every recognized field. Its
// order is the argv emission order for Modify commands.
var fieldTable = []fieldSpec{
	{field: FieldEpisode, atom: "tves", label: "TVEpisodeNum", flag: "--TVEpisodeNum", display: "Episode"},
	{field: FieldSeason, atom: "tvsn", label: "TVSeasonNum", flag: "--TVSeasonNum", display: "Season"},
	{field: FieldShow, atom: "tvnn", label: "TVShowName", flag: "--TVShowName", display: "TV Show"},
	{field: FieldGenre, atom: "©gen", label: "Genre", flag: "--genre", display: "Genre"},
	{field: FieldDescription, atom: "desc", label: "Description", flag: "--description", display: "Description"},
	{field: FieldLongDesc, atom: "ldes", label: "Long Description", flag: "--longdesc", display: "Long Description"},
	{field: FieldURL, flag: "--desc", display: "URL"},
	{field: FieldAdvisory, label: "Rating Tool", flag: "--advisory", display: "Advisory"},
	{field: FieldTitle, atom: "©nam", label: "Title", flag: "--title", display: "Title"},
	{field: FieldYear, atom: "©day", label: "Year", flag: "--year", display: "Year"},
	{field: FieldIMDb, label: "IMDbID", flag: "--xID", xidScheme: "IMDbID", display: "IMDb ID"},
	{field: FieldTheTVDB, label: "TheTVDB", flag: "--xID", xidScheme: "TheTVDB", display: "TheTVDB ID"},
	{field: FieldEncodingTool, atom: "©too", label: "Encoding Tool", flag: "--encodingTool", display: "Encoding Tool"},
}

// displayOrder is the order the friendly view prints fields in.
var displayOrder = []Field{
	FieldTitle, FieldShow, FieldSeason, FieldEpisode, FieldGenre,
	FieldDescription, FieldLongDesc, FieldURL, FieldYear, FieldAdvisory,
	FieldIMDb, FieldTheTVDB, FieldEncodingTool,
}

// flagPair renders the flag/value argv tokens for a field.
func (fs fieldSpec) flagPair(value string) []string {
	if fs.xidScheme != "" {
		return []string{fs.flag, fs.xidScheme + "=" + value}
	}
	return []string{fs.flag, value}
}

// Fields returns every recognized field name.
func Fields() []Field {
	out := make([]Field, 0, len(fieldTable))
	for _, fs := range fieldTable {
		out = append(out, fs.field)
	}
	return out
}

// FieldByName resolves a user-supplied field name, case-insensitively.
func FieldByName(name string) (Field, bool) {
	for _, fs := range fieldTable {
		if strings.EqualFold(name, string(fs.field)) {
			return fs.field, true
		}
	}
	return "", false
}

// Record holds the metadata extracted from one file. A missing key means the
// dump never mentioned that field. Records are built fresh per extraction and
// not shared between files.
type Record map[Field]string

// set stores a value, normalized to NFC. macOS-tagged files frequently carry
// decomposed UTF-8 and AtomicParsley dumps it verbatim.
func (r Record) set(f Field, value string) {
	r[f] = norm.NFC.String(value)
}

// Empty reports whether no field carries a non-empty value.
func (r Record) Empty() bool {
	for _, v := range r {
		if v != "" {
			return false
		}
	}
	return true
}

// Summary formats the present, non-empty fields as "Label: value" lines in
// display order.
func (r Record) Summary() []string {
	byField := make(map[Field]fieldSpec, len(fieldTable))
	for _, fs := range fieldTable {
		byField[fs.field] = fs
	}
	var lines []string
	for _, f := range displayOrder {
		if v := r[f]; v != "" {
			lines = append(lines, byField[f].display+": "+v)
		}
	}
	return lines
}

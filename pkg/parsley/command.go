package parsley

// Mode is the single operating intent for a run.
type Mode int

const (
	ModeView Mode = iota
	ModeModify
	ModeWipe
)

func (m Mode) String() string {
	switch m {
	case ModeModify:
		return "modify"
	case ModeWipe:
		return "wipe"
	default:
		return "view"
	}
}

// Options selects what a run should do to each file. Field values are passed
// through verbatim; AtomicParsley is the arbiter of what it accepts.
type Options struct {
	RawView  bool   // dump in raw AtomicParsley format instead of the friendly summary
	Mirror   string // source file to copy all metadata from
	NoTools  bool   // clear the encoding tool field
	DeepScan bool   // append --DeepScan to mutation commands
	Wipe     bool   // wipe all metadata, ignoring field options
	Fields   map[Field]string
}

// DetermineMode derives the mode from which options were supplied. Wipe
// short-circuits everything else; a run with no metadata-affecting options
// is a view.
func DetermineMode(o Options) Mode {
	switch {
	case o.Wipe:
		return ModeWipe
	case o.Mirror != "" || o.NoTools || len(o.Fields) > 0:
		return ModeModify
	default:
		return ModeView
	}
}

// BuildArgs synthesizes the AtomicParsley argument list for one target file.
// The binary itself is not included; the caller prepends it, so the target
// file stays immediately after the binary name and the --overWrite and
// --DeepScan modifiers come last. AtomicParsley is order-sensitive for some
// flag combinations.
//
// The returned slice is nil only when mirroring was requested against a file
// AtomicParsley cannot read and no explicit fields were given; callers must
// treat that as "nothing to execute", not as a valid no-op command.
func BuildArgs(file string, mode Mode, o Options, mirror Record) []string {
	switch mode {
	case ModeWipe:
		return []string{file, "--metaEnema", "--overWrite"}
	case ModeView:
		return []string{file, "-t"}
	}

	var pairs []string
	if o.Mirror != "" && IsProcessable(o.Mirror) {
		pairs = mirrorPairs(o, mirror)
	} else {
		pairs = explicitPairs(o)
	}
	if len(pairs) == 0 && o.Mirror != "" {
		return nil
	}

	args := append([]string{file}, pairs...)
	args = append(args, "--overWrite")
	if o.DeepScan {
		args = append(args, "--DeepScan")
	}
	return args
}

// mirrorPairs translates an extracted record into flag/value pairs. Explicit
// field options are not consulted when mirroring.
func mirrorPairs(o Options, src Record) []string {
	var pairs []string
	for _, fs := range fieldTable {
		if fs.field == FieldEncodingTool {
			continue
		}
		if v := src[fs.field]; v != "" {
			pairs = append(pairs, fs.flagPair(v)...)
		}
	}
	// The encoding tool is always rewritten when mirroring: cleared when
	// --notools was given or the source has none, copied otherwise.
	tool := ""
	if !o.NoTools {
		tool = src[FieldEncodingTool]
	}
	return append(pairs, "--encodingTool", tool)
}

func explicitPairs(o Options) []string {
	var pairs []string
	for _, fs := range fieldTable {
		if fs.field == FieldEncodingTool && o.NoTools {
			continue
		}
		if v := o.Fields[fs.field]; v != "" {
			pairs = append(pairs, fs.flagPair(v)...)
		}
	}
	if o.NoTools {
		pairs = append(pairs, "--encodingTool", "")
	}
	return pairs
}

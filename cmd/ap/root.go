package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	logLevel   string
	rawView    bool
	mirrorPath string
	noTools    bool
	deepScan   bool
	wipe       bool
	dryRun     bool
	setPairs   []string

	flagTitle    string
	flagEpisode  string
	flagSeason   string
	flagShow     string
	flagGenre    string
	flagDesc     string
	flagLongDesc string
	flagURL      string
	flagAdvisory string
	flagYear     string
	flagIMDb     string
	flagTheTVDB  string
)

// errReported marks failures already explained to the user; Execute exits
// non-zero without printing them again.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "ap [flags] <files...>",
	Short: "A user-friendly interface for AtomicParsley",
	Long: `ap - a user-friendly interface for manipulating media file metadata
with AtomicParsley. Only .mp4 and .m4v files are processed.`,
	Example: `  ap video.mp4                     View metadata in user-friendly format
  ap -t video.mp4                  View metadata in raw format
  ap -m source.mp4 target.mp4      Copy all metadata from source to target
  ap --title 'My Video' video.mp4  Set title for video
  ap --notools video.mp4           Remove encoding tool metadata`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()

	f.BoolVarP(&rawView, "raw", "t", false, "View metadata in raw AtomicParsley format")
	f.StringVarP(&mirrorPath, "mirror", "m", "", "Mirror all metadata from the specified file")
	f.BoolVar(&noTools, "notools", false, "Remove encoding tool metadata")

	f.StringVar(&flagTitle, "title", "", "Set the title metadata")
	f.StringVar(&flagEpisode, "episode", "", "Set the TV episode number metadata")
	f.StringVar(&flagSeason, "season", "", "Set the TV season number metadata")
	f.StringVar(&flagShow, "show", "", "Set the TV show name metadata")
	f.StringVar(&flagGenre, "genre", "", "Set the genre metadata (comma separated values)")
	f.StringVar(&flagDesc, "desc", "", "Set the description metadata")
	f.StringVar(&flagLongDesc, "longdesc", "", "Set the long description metadata")
	f.StringVar(&flagURL, "url", "", "Set the URL metadata")
	f.StringVar(&flagAdvisory, "advisory", "", "Set the advisory metadata to 'clean' or 'explicit'")
	f.StringVar(&flagYear, "year", "", "Set the year metadata")
	f.StringVar(&flagIMDb, "imdb", "", "Set the IMDb ID (e.g. tt11548850)")
	f.StringVar(&flagTheTVDB, "thetvdb", "", "Set the TheTVDB ID")
	f.StringArrayVar(&setPairs, "set", nil, "Set a metadata field by name (field=value, repeatable)")

	f.BoolVar(&deepScan, "DeepScan", false, "Perform a deep scan of metadata")
	f.BoolVar(&wipe, "wipe", false, "Wipe all metadata (ignores other metadata switches)")
	f.BoolVar(&dryRun, "dry-run", false, "Print the AtomicParsley command instead of running it")

	f.StringVar(&configPath, "config", "", "Path to config file (default is ~/.config/ap/config.toml)")
	f.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ap {{.Version}}\n")
}

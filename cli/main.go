// metallum is a command line client for www.metal-archives.com. It looks up
// bands, albums, and artists by id, runs the advanced searches, and prints
// entity attributes one per line.
//
// Configuration comes from ~/.metallum/config.yaml or METALLUM_* environment
// variables: cache_dir, delay, timeout, and user_agent.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lkowal/metallum"
	"github.com/lkowal/metallum/countries"
	"github.com/lkowal/metallum/session"
	"github.com/lkowal/metallum/subcmd"
	"github.com/spf13/viper"
)

const usage = `metallum is a client for www.metal-archives.com.

usage:

  metallum <subcommand> [flags]

subcommands:

  band           print a band by id
  album          print an album by id
  artist         print an artist by id
  search-bands   run the advanced band search
  search-albums  run the advanced album search
  random         print a random band
`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := configure(); err != nil {
		return err
	}

	switch args[0] {
	case "band":
		return runBand(args[1:])
	case "album":
		return runAlbum(args[1:])
	case "artist":
		return runArtist(args[1:])
	case "search-bands":
		return runSearchBands(args[1:])
	case "search-albums":
		return runSearchAlbums(args[1:])
	case "random":
		return runRandom(args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
		return nil
	}
}

// configure builds the session from viper's merged config sources. A
// missing config file is fine; defaults cover everything.
func configure() error {
	v := viper.New()
	v.SetEnvPrefix("metallum")
	v.AutomaticEnv()
	v.SetDefault("delay", time.Second/3)
	v.SetDefault("timeout", 30*time.Second)

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".metallum"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	return session.Configure(session.Options{
		CacheDir:  v.GetString("cache_dir"),
		Delay:     v.GetDuration("delay"),
		UserAgent: v.GetString("user_agent"),
		Timeout:   v.GetDuration("timeout"),
	})
}

func runBand(args []string) error {
	sc := subcmd.New("band", "band prints a band's attributes.").
		SetArg("id", "string", "the band's id, like 138 for Vektor")
	id, err := sc.ParseArg(args)
	if err != nil {
		return err
	}
	return printEntity(metallum.GetBand(id))
}

func runAlbum(args []string) error {
	sc := subcmd.New("album", "album prints an album's attributes, tracks included.").
		SetArg("id", "string", "the album's id")
	id, err := sc.ParseArg(args)
	if err != nil {
		return err
	}
	album := metallum.GetAlbum(id)
	if err := printEntity(album); err != nil {
		return err
	}
	return printTracks(album)
}

func runArtist(args []string) error {
	sc := subcmd.New("artist", "artist prints an artist's attributes.").
		SetArg("id", "string", "the artist's id")
	id, err := sc.ParseArg(args)
	if err != nil {
		return err
	}
	return printEntity(metallum.GetArtist(id))
}

func runSearchBands(args []string) error {
	sc := subcmd.New("search-bands", "search-bands runs the advanced band search.")
	name := sc.String("name", "", "band name to match")
	strict := sc.Bool("strict", false, "match the name exactly")
	genre := sc.String("genre", "", "genre text to match")
	country := sc.String("country", "", "country name, like 'United States'")
	formedFrom := sc.Int("formed-from", 0, "earliest formation year")
	formedTo := sc.Int("formed-to", 0, "latest formation year")
	if err := sc.Parse(args); err != nil {
		return err
	}

	query := metallum.BandQuery{
		Name:       *name,
		Strict:     *strict,
		Genre:      *genre,
		FormedFrom: *formedFrom,
		FormedTo:   *formedTo,
	}
	if *country != "" {
		c, err := countries.ByName(*country)
		if err != nil {
			return err
		}
		query.Countries = []countries.Country{c}
	}

	bands, err := metallum.SearchBands(query)
	if err != nil {
		return err
	}
	for _, band := range bands {
		fmt.Println(band)
	}
	return nil
}

func runSearchAlbums(args []string) error {
	sc := subcmd.New("search-albums", "search-albums runs the advanced album search.")
	name := sc.String("name", "", "release title to match")
	strict := sc.Bool("strict", false, "match the title exactly")
	band := sc.String("band", "", "band name to match")
	bandStrict := sc.Bool("band-strict", false, "match the band name exactly")
	yearFrom := sc.Int("year-from", 0, "earliest release year")
	yearTo := sc.Int("year-to", 0, "latest release year")
	genre := sc.String("genre", "", "genre text to match")
	kind := sc.String("type", "", "release type, like 'Full-length'")
	if err := sc.Parse(args); err != nil {
		return err
	}

	query := metallum.AlbumQuery{
		Name:       *name,
		Strict:     *strict,
		Band:       *band,
		BandStrict: *bandStrict,
		YearFrom:   *yearFrom,
		YearTo:     *yearTo,
		Genre:      *genre,
	}
	if *kind != "" {
		rt, err := metallum.ParseReleaseType(*kind)
		if err != nil {
			return err
		}
		query.Types = []metallum.ReleaseType{rt}
	}

	albums, err := metallum.SearchAlbums(query)
	if err != nil {
		return err
	}
	for _, album := range albums {
		fmt.Println(album)
	}
	return nil
}

func runRandom(args []string) error {
	sc := subcmd.New("random", "random prints a random band.")
	if err := sc.Parse(args); err != nil {
		return err
	}
	band, err := metallum.RandomBand()
	if err != nil {
		return err
	}
	return printEntity(band)
}

// printEntity prints every attribute of an entity, one per line. Attributes
// that fail to resolve print their error instead of aborting the rest.
func printEntity(e metallum.Entity) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, attr := range e.Attrs() {
		v, err := e.Attr(attr)
		if err != nil {
			fmt.Fprintf(w, "%s\t!! %v\n", attr, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", attr, formatValue(v))
	}
	return w.Flush()
}

func printTracks(album *metallum.Album) error {
	discs, err := album.Discs()
	if err != nil {
		return err
	}
	for _, disc := range discs {
		if len(discs) > 1 {
			name, _ := disc.Name()
			fmt.Printf("\ndisc %d %s\n", disc.Number(), name)
		} else {
			fmt.Println()
		}
		tracks, err := disc.Tracks()
		if err != nil {
			return err
		}
		for _, track := range tracks {
			fmt.Printf("  %s (%s)\n", track, formatDuration(track.Length()))
		}
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, "; ")
	case time.Duration:
		return formatDuration(val)
	case fmt.Stringer:
		return val.String()
	}
	if items, ok := asStringers(v); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.String()
		}
		return strings.Join(parts, "; ")
	}
	return fmt.Sprint(v)
}

func asStringers(v any) ([]fmt.Stringer, bool) {
	switch items := v.(type) {
	case []*metallum.Band:
		return toStringers(items), true
	case []*metallum.Album:
		return toStringers(items), true
	case []*metallum.Disc:
		return toStringers(items), true
	case []*metallum.Track:
		return toStringers(items), true
	case []*metallum.LineupArtist:
		return toStringers(items), true
	case []*metallum.AlbumArtist:
		return toStringers(items), true
	case []*metallum.SimilarBand:
		return toStringers(items), true
	}
	return nil, false
}

func toStringers[T fmt.Stringer](items []T) []fmt.Stringer {
	result := make([]fmt.Stringer, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

func formatDuration(d time.Duration) string {
	total := int(d / time.Second)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

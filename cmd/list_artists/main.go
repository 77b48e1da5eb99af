// Command list_artists lists every artist found in a directory tree of song
// files, one line per artist:
//
//	artist ID<SEP>artist MusicBrainz ID<SEP>one track ID<SEP>artist name
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/robert-malhotra/go-msd/internal/logging"
	"github.com/robert-malhotra/go-msd/msd"
	"github.com/robert-malhotra/go-msd/normalize"
)

// Separator between the fields of an output line.
const Separator = "<SEP>"

var (
	debugFlag = flag.Bool("debug", false, "log debug output")
	dupesFlag = flag.Bool("dupes", false, "report artists with different IDs but matching names")
	statsFlag = flag.Bool("stats", true, "print name statistics")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: list_artists [options] <dataset dir> <output.txt>")
	fmt.Fprintln(out, "Lists all artists contained in all subdirectories of a directory.")
	fmt.Fprintln(out, "Output format: artist ID<SEP>artist MusicBrainz ID<SEP>one track ID<SEP>artist name")
	fmt.Fprintln(out, "Options:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.Setup(*debugFlag)
	if err := run(os.Stdout, logger, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, dir, output string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if _, err := os.Stat(output); err == nil {
		return outputExists(output)
	}

	start := time.Now()
	artists, numFiles, err := collect(dir, logger)
	if err != nil {
		return err
	}
	logger.Info("listed artists", "artists", len(artists), "files", numFiles, "elapsed", time.Since(start))
	fmt.Fprintf(w, "number of artists found: %d in %d files\n", len(artists), numFiles)

	out, err := os.OpenFile(output, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, os.ErrExist) {
		return outputExists(output)
	}
	if err != nil {
		return err
	}
	sorted := sortArtists(artists)
	if err := writeArtists(out, sorted); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if *statsFlag {
		printStats(w, sorted)
	}
	if *dupesFlag {
		for _, p := range findDupes(sorted) {
			fmt.Fprintf(w, "possible duplicate: %s (%s) <-> %s (%s)\n", p[0].Name, p[0].ID, p[1].Name, p[1].ID)
		}
	}
	return nil
}

func outputExists(output string) error {
	return fmt.Errorf("output file %s exists, please delete or choose new one", output)
}

type artist struct {
	ID      string
	Mbid    string
	TrackID string
	Name    string
}

// collect reads every song of every file below dir and keeps the first
// track seen for each artist ID.
func collect(dir string, logger *slog.Logger) (map[string]artist, int, error) {
	artists := make(map[string]artist)
	numFiles := 0

	err := msd.Walk(dir, func(path string, f *msd.File, err error) error {
		if err != nil {
			logger.Warn("skipping song file", "path", path, "error", err)
			return nil
		}
		numFiles++

		n, err := f.NumSongs()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			a, err := readArtist(f, i)
			if err != nil {
				return err
			}
			if a.ID == "" {
				return fmt.Errorf("null artist id in song %d of %s", i, path)
			}
			if _, ok := artists[a.ID]; !ok {
				artists[a.ID] = a
			}
		}
		return nil
	}, msd.WithLogger(logger))
	if err != nil {
		return nil, numFiles, err
	}
	return artists, numFiles, nil
}

func readArtist(f *msd.File, songIdx int) (artist, error) {
	var a artist
	var err error
	if a.ID, err = f.ArtistID(songIdx); err != nil {
		return a, err
	}
	if a.Mbid, err = f.ArtistMbid(songIdx); err != nil {
		return a, err
	}
	if a.TrackID, err = f.TrackID(songIdx); err != nil {
		return a, err
	}
	if a.Name, err = f.ArtistName(songIdx); err != nil {
		return a, err
	}
	return a, nil
}

func sortArtists(artists map[string]artist) []artist {
	out := make([]artist, 0, len(artists))
	for _, a := range artists {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func writeArtists(w io.Writer, artists []artist) error {
	bw := bufio.NewWriter(w)
	for _, a := range artists {
		line := strings.Join([]string{a.ID, a.Mbid, a.TrackID, a.Name}, Separator)
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// findDupes returns pairs of artists whose normalized names share a key.
// Artists are indexed by key so the full list is never compared pairwise.
func findDupes(artists []artist) [][2]artist {
	byKey := make(map[string][]int)
	for i, a := range artists {
		for _, k := range normalize.Artist(a.Name) {
			byKey[k] = append(byKey[k], i)
		}
	}

	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for _, idx := range byKey {
		for x := 0; x < len(idx); x++ {
			for y := x + 1; y < len(idx); y++ {
				p := [2]int{idx[x], idx[y]}
				if seen[p] {
					continue
				}
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	out := make([][2]artist, len(pairs))
	for i, p := range pairs {
		out[i] = [2]artist{artists[p[0]], artists[p[1]]}
	}
	return out
}

var reWord = regexp.MustCompile(`\w+`)

type wordCount struct {
	word  string
	count int
}

// nameStats returns the mean artist name length in runes and the words of
// the names by decreasing frequency.
func nameStats(artists []artist) (float64, []wordCount) {
	if len(artists) == 0 {
		return 0, nil
	}
	total := 0
	counts := make(map[string]int)
	for _, a := range artists {
		total += len([]rune(a.Name))
		for _, word := range reWord.FindAllString(strings.ToLower(a.Name), -1) {
			counts[word]++
		}
	}

	words := make([]wordCount, 0, len(counts))
	for word, c := range counts {
		words = append(words, wordCount{word, c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].count != words[j].count {
			return words[i].count > words[j].count
		}
		return words[i].word < words[j].word
	})
	return float64(total) / float64(len(artists)), words
}

func printStats(w io.Writer, artists []artist) {
	mean, words := nameStats(artists)
	fmt.Fprintf(w, "average artist name length: %.2f\n", mean)
	fmt.Fprintf(w, "number of different words used: %d\n", len(words))
	fmt.Fprintln(w, "the most used words in artist names are:")
	for i := 0; i < len(words) && i < 5; i++ {
		fmt.Fprintf(w, "* %s (freq=%d)\n", words[i].word, words[i].count)
	}
}

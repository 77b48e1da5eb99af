// Command display_song prints everything known about one song of a song file.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-msd/internal/logging"
	"github.com/robert-malhotra/go-msd/msd"
)

var (
	debugFlag   = flag.Bool("debug", false, "log debug output")
	summaryFlag = flag.Bool("summary", false, "print array shapes and first values only")
	jsonFlag    = flag.Bool("json", false, "print the song as JSON")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: display_song [options] <file.h5> [songidx] [field ...]")
	fmt.Fprintln(out, "A field is a name such as artist_name, or a table@column path such as /analysis/songs@tempo.")
	fmt.Fprintln(out, "Options:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.Setup(*debugFlag)
	if err := run(os.Stdout, logger, args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, args []string) error {
	path := args[0]
	fields := args[1:]

	songIdx := 0
	if len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			songIdx = n
			fields = fields[1:]
		}
	}

	f, err := msd.Open(path, msd.WithLogger(logger))
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.NumSongs()
	if err != nil {
		return err
	}
	if songIdx < 0 || songIdx >= n {
		return fmt.Errorf("song index %d out of range, %s has %d songs", songIdx, path, n)
	}

	if *jsonFlag && len(fields) == 0 {
		s, err := f.Song(songIdx)
		if err != nil {
			return err
		}
		return writeJSON(w, s)
	}

	if len(fields) == 0 {
		for _, fld := range msd.Fields {
			fields = append(fields, fld.Name)
		}
	}

	if *jsonFlag {
		values := make(map[string]interface{}, len(fields))
		for _, name := range fields {
			// Absent fields encode as null.
			v, _, err := fieldValue(f, name, songIdx)
			if err != nil {
				return err
			}
			values[name] = v
		}
		return writeJSON(w, values)
	}

	fmt.Fprintf(w, "number of songs: %d\n", n)
	for _, name := range fields {
		v, present, err := fieldValue(f, name, songIdx)
		if err != nil {
			return err
		}
		if !present {
			fmt.Fprintf(w, "%s: not in file\n", name)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", name, formatValue(v, *summaryFlag))
	}
	return nil
}

// fieldValue reads a field for display. A known field the file does not
// carry, such as an array of a summary file, is reported as not present
// instead of as an error.
func fieldValue(f *msd.File, name string, songIdx int) (v interface{}, present bool, err error) {
	v, err = readField(f, name, songIdx)
	if errors.Is(err, msd.ErrNotFound) && !strings.Contains(name, "@") {
		if _, known := msd.LookupField(name); known {
			return nil, false, nil
		}
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// readField reads a named field, or a raw table@column cell.
func readField(f *msd.File, name string, songIdx int) (interface{}, error) {
	if !strings.Contains(name, "@") {
		return f.Value(name, songIdx)
	}
	tablePath, column, err := msd.ParseFieldPath(name)
	if err != nil {
		return nil, err
	}
	t, err := f.Table(tablePath)
	if err != nil {
		return nil, err
	}
	return t.Value(songIdx, column)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatValue(v interface{}, summary bool) string {
	switch x := v.(type) {
	case []float64:
		return formatSlice(x, summary)
	case []int:
		return formatSlice(x, summary)
	case []string:
		return formatSlice(x, summary)
	case msd.Matrix:
		if summary {
			if x.Rows() == 0 {
				return fmt.Sprintf("shape=(0, %d)", x.Width)
			}
			return fmt.Sprintf("shape=(%d, %d) first=%v", x.Rows(), x.Width, x.Row(0))
		}
		rows := make([][]float64, x.Rows())
		for r := range rows {
			rows[r] = x.Row(r)
		}
		return fmt.Sprintf("shape=(%d, %d) %v", x.Rows(), x.Width, rows)
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func formatSlice[T any](s []T, summary bool) string {
	if !summary {
		return fmt.Sprint(s)
	}
	if len(s) == 0 {
		return "shape=(0,)"
	}
	return fmt.Sprintf("shape=(%d,) first=%v", len(s), s[0])
}

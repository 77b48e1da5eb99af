// Diagnostic tool for song files: prints the HDF5 tree and checks that every
// table, index column and array a song file should carry is present.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/robert-malhotra/go-msd/internal/logging"
	"github.com/robert-malhotra/go-msd/msd"
)

var (
	debugFlag = flag.Bool("debug", false, "log debug output")
	treeFlag  = flag.Bool("tree", true, "print the HDF5 tree")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: diagnose [options] <file.h5>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := args[0]
	logger := logging.Setup(*debugFlag)
	fmt.Printf("=== Analyzing %s ===\n\n", filename)

	if *treeFlag {
		if err := printTree(os.Stdout, filename); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}

	f, err := msd.Open(filename, msd.WithLogger(logger))
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	printSongs(os.Stdout, f)
	if !printLayout(os.Stdout, f.CheckLayout()) {
		f.Close()
		os.Exit(2)
	}
}

func printTree(w io.Writer, filename string) error {
	f, err := hdf5.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(w, "Superblock version: %d\n\n", f.Version())

	return hdf5.Walk(f.Root(), func(path string, obj interface{}, err error) error {
		indent := strings.Repeat("  ", depth(path))
		if err != nil {
			fmt.Fprintf(w, "%s%q: ERROR opening as group or dataset: %v\n", indent, path, err)
			return nil
		}
		switch o := obj.(type) {
		case *hdf5.Group:
			fmt.Fprintf(w, "%sGroup %q\n", indent, path)
			printAttrs(w, indent, o.Attrs(), o.Attr)
		case *hdf5.Dataset:
			fmt.Fprintf(w, "%sDataset %q: shape=%v", indent, path, o.Shape())
			if t, err := o.GoType(); err == nil {
				fmt.Fprintf(w, " type=%v", t)
			}
			fmt.Fprintln(w)
			printAttrs(w, indent, o.Attrs(), o.Attr)
		}
		return nil
	})
}

func printAttrs(w io.Writer, indent string, names []string, attr func(string) *hdf5.Attribute) {
	for _, name := range names {
		a := attr(name)
		if a == nil {
			continue
		}
		v, err := a.Value()
		if err != nil {
			fmt.Fprintf(w, "%s  @%s: ERROR %v\n", indent, name, err)
			continue
		}
		fmt.Fprintf(w, "%s  @%s = %v\n", indent, name, v)
	}
}

func depth(path string) int {
	if path == "/" {
		return 0
	}
	return strings.Count(path, "/")
}

// printSongs prints the song count, or the error that kept it from being read.
func printSongs(w io.Writer, f *msd.File) {
	n, err := f.NumSongs()
	if err != nil {
		fmt.Fprintf(w, "ERROR: counting songs: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Songs: %d\n", n)
}

// printLayout reports the result of CheckLayout and returns true when the
// file is complete.
func printLayout(w io.Writer, err error) bool {
	if err == nil {
		fmt.Fprintln(w, "Layout: complete")
		return true
	}

	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	fmt.Fprintf(w, "Layout: %d problem(s)\n", len(errs))
	for _, e := range errs {
		var le *msd.LayoutError
		switch {
		case errors.As(e, &le) && errors.Is(le, msd.ErrNotFound):
			fmt.Fprintf(w, "  missing %s\n", le.Path)
		case errors.As(e, &le):
			fmt.Fprintf(w, "  %s: %v\n", le.Path, le.Err)
		default:
			fmt.Fprintf(w, "  %v\n", e)
		}
	}
	return false
}

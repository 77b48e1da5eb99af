package msd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// writeH5 creates a small HDF5 file without the song tables.
func writeH5(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := hdf5.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	grp, err := f.Root().CreateGroup("analysis")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if _, err := grp.CreateDataset("beats_start", []float64{0.5, 1.0}); err != nil {
		t.Fatalf("CreateDataset failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func writeText(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// walkTree lays out:
//
//	A/x.h5      valid HDF5
//	B/bad.h5    not HDF5
//	B/y.H5      valid HDF5
//	readme.txt  ignored
func walkTree(t *testing.T) string {
	root := t.TempDir()
	writeH5(t, filepath.Join(root, "A", "x.h5"))
	writeText(t, filepath.Join(root, "B", "bad.h5"), "not an hdf5 file")
	writeH5(t, filepath.Join(root, "B", "y.H5"))
	writeText(t, filepath.Join(root, "readme.txt"), "song files")
	return root
}

func TestWalk(t *testing.T) {
	root := walkTree(t)

	type visit struct {
		rel    string
		opened bool
	}
	var got []visit

	err := Walk(root, func(path string, f *File, err error) error {
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)
		if err != nil {
			if f != nil {
				t.Errorf("%s: file should be nil on error", rel)
			}
			got = append(got, visit{rel, false})
			return nil
		}
		if f.Path() != path {
			t.Errorf("%s: Path() = %s", rel, f.Path())
		}
		// Plain HDF5 files have no song tables.
		if _, err := f.NumSongs(); err == nil {
			t.Errorf("%s: NumSongs should fail without a metadata table", rel)
		}
		got = append(got, visit{rel, true})
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []visit{{"A/x.h5", true}, {"B/bad.h5", false}, {"B/y.H5", true}}
	if len(got) != len(want) {
		t.Fatalf("expected visits %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestWalkStop(t *testing.T) {
	root := walkTree(t)

	count := 0
	err := Walk(root, func(path string, f *File, err error) error {
		count++
		return ErrStopWalk
	})
	if err != nil {
		t.Errorf("expected nil after ErrStopWalk, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 visit, got %d", count)
	}
}

func TestWalkAbort(t *testing.T) {
	root := walkTree(t)

	errAbort := errors.New("abort")
	err := Walk(root, func(path string, f *File, err error) error {
		if err != nil {
			return errAbort
		}
		return nil
	})
	if !errors.Is(err, errAbort) {
		t.Errorf("expected abort error, got %v", err)
	}
	if IsStopWalk(err) {
		t.Error("abort error reported as stop")
	}
}

func TestWalkMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	var seen error
	err := Walk(missing, func(path string, f *File, err error) error {
		seen = err
		return err
	})
	if seen == nil || err == nil {
		t.Errorf("expected an error for missing root, got callback=%v walk=%v", seen, err)
	}
}

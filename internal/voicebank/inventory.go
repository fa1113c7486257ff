package voicebank

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDirectoryUnavailable is returned when the voices directory path is
// invalid or unreadable. A directory that simply does not exist is a
// normal case and yields an empty inventory, as do missing individual
// files.
var ErrDirectoryUnavailable = errors.New("voices directory unavailable")

// Entry records one candidate file found on disk.
type Entry struct {
	Name string
	Role Role
	Size int64
}

// Inventory is the result of one directory scan: every candidate that
// exists, in declaration order.
type Inventory []Entry

// Names returns the file names of the inventory, in declaration order.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for _, e := range inv {
		names = append(names, e.Name)
	}
	return names
}

// Has reports whether a file name was found during the scan.
func (inv Inventory) Has(name string) bool {
	for _, e := range inv {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Missing returns the candidate names that were not found, in declaration
// order. Used for the startup warning listing absent voice files.
func Missing(stem string, inv Inventory) []string {
	var missing []string
	for _, c := range Candidates(stem) {
		if !inv.Has(c.Name) {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// scan stats every candidate name under dir. Only exact-name lookups are
// performed; the directory is never walked. A nonexistent directory
// produces an empty inventory; only an unreadable or invalid path is
// fatal.
func scan(dir, stem string) (Inventory, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnavailable, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryUnavailable, dir)
	}

	var inv Inventory
	for _, c := range Candidates(stem) {
		fi, err := os.Stat(filepath.Join(dir, c.Name))
		if err != nil || fi.IsDir() {
			continue
		}
		inv = append(inv, Entry{Name: c.Name, Role: c.Role, Size: fi.Size()})
	}
	return inv, nil
}

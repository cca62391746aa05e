package jsonconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestPersistRetriesOnceThenGivesUp(t *testing.T) {
	defaults := NewDocument().Set("volume", Int(10))
	current := NewDocument().Set("volume", Int(4))
	loc := Location{Dir: filepath.Join(t.TempDir(), "conf"), Name: "settings.json"}

	r := New(Options{})
	var currentWrites, defaultWrites int
	r.write = func(path string, doc *Document) error {
		if doc == current {
			currentWrites++
			return fmt.Errorf("write config: %w", fs.ErrNotExist)
		}
		defaultWrites++
		return writeDocument(path, doc)
	}

	err := r.Persist(defaults, current, loc)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected the retry failure to propagate, got %v", err)
	}
	if currentWrites != 2 {
		t.Fatalf("expected exactly two write attempts, got %d", currentWrites)
	}
	if defaultWrites != 1 {
		t.Fatalf("expected a single initialization pass, got %d", defaultWrites)
	}
}

func TestPersistDoesNotRetryOtherErrors(t *testing.T) {
	defaults := NewDocument().Set("volume", Int(10))
	current := NewDocument().Set("volume", Int(4))
	loc := Location{Dir: t.TempDir(), Name: "settings.json"}

	r := New(Options{})
	var writes int
	r.write = func(string, *Document) error {
		writes++
		return fmt.Errorf("write config: %w", fs.ErrPermission)
	}

	if err := r.Persist(defaults, current, loc); !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if writes != 1 {
		t.Fatalf("expected no retry, got %d writes", writes)
	}
}

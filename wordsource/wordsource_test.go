package wordsource

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRandomWords(t *testing.T) {
	words := RandomWords(rand.New(rand.NewSource(1)), 50, 6)
	if len(words) != 50 {
		t.Fatalf("expected 50 words, got %d", len(words))
	}
	for _, w := range words {
		if len(w) != 6 {
			t.Errorf("word %q has wrong length", w)
		}
		for _, c := range w {
			if c < 'A' || c > 'Z' {
				t.Errorf("word %q contains %q", w, c)
			}
		}
	}
	again := RandomWords(rand.New(rand.NewSource(1)), 50, 6)
	if diff := cmp.Diff(words, again); diff != "" {
		t.Errorf("same seed must produce same words (-first +second):\n%s", diff)
	}
	if RandomWords(rand.New(rand.NewSource(1)), 0, 6) != nil {
		t.Errorf("zero words requested, expected nil")
	}
}

func TestWordsTrimsWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	got := Words(strings.NewReader("  Hello   world\n\nagain "))
	want := []string{"Hello", "world", "again"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	got, err := Load("testdata/fox.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Fields("The quick brown fox jumps over the lazy dog")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pqueue")
	defer teardown()
	//
	got, err := Load("testdata/fox.html")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Fields("Fox The quick brown fox jumps")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load("testdata"); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	if _, err := Load("testdata/missing.txt"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

package wordsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// ErrNotRegular is flagged if a path to load does not denote a regular file.
var ErrNotRegular = errors.New("wordsource: not a regular file")

// Load reads the words of a file. Files with extension .html or .htm are
// parsed as HTML and contribute their text content only, all other files are
// read as UTF-8 text.
func Load(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := openFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadHTML(f)
	}
	return LoadText(path)
}

// LoadText reads a UTF-8 text file and splits it into words.
func LoadText(path string) ([]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words := Words(f)
	tracer().Debugf("wordsource: loaded %d words from %s", len(words), path)
	return words, nil
}

// Words splits the text from r at line-break opportunities. Fragments are
// trimmed of whitespace; empty fragments are dropped.
func Words(r io.Reader) []string {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	var words []string
	for segmenter.Next() {
		frag := strings.TrimSpace(string(segmenter.Bytes()))
		if frag == "" {
			continue
		}
		words = append(words, frag)
	}
	return words
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	return os.Open(path)
}

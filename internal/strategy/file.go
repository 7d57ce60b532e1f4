package strategy

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/asciiholdem/internal/fileutil"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads and validates a table from path. Gzip-compressed files are
// detected from their header, whatever the file is called.
func Load(path string) (*Table, error) {
	if path == "" {
		return nil, errors.New("strategy path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open strategy: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load strategy %s: %w", path, err)
	}
	return t, nil
}

// Decode reads a JSON table, optionally gzip-compressed, from r.
func Decode(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gzipMagic))

	var src io.Reader = br
	if string(head) == string(gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var t Table
	if err := json.NewDecoder(src).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if t.Strategies == nil {
		t.Strategies = make(map[string]Distribution)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Save writes the table to path, gzip-compressed when the name ends in
// ".gz". Readers never observe a partially written file: the table is
// written to a temporary file in the same directory and renamed into place.
func (t *Table) Save(path string) error {
	if t == nil {
		return errors.New("nil strategy table")
	}
	if path == "" {
		return errors.New("destination path is required")
	}

	compress := strings.HasSuffix(path, ".gz")
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return t.encode(w, compress)
	})
	if err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}
	return nil
}

func (t *Table) encode(w io.Writer, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}
	zw := gzip.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(t); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

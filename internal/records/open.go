// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package records

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloudeng.io/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the name used to refer to os.Stdin.
const Stdin = "-"

type readCloser struct {
	io.Reader
	closers []func() error
}

// Close closes the decompressor, if any, and then the underlying file.
func (rc *readCloser) Close() error {
	errs := &errors.M{}
	for _, fn := range rc.closers {
		errs.Append(fn())
	}
	return errs.Err()
}

// Open opens the named file, or os.Stdin for "-", and transparently
// decompresses its contents according to the file's extension.
func Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	rc, err := decompress(f, filepath.Ext(name))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return rc, nil
}

func decompress(f io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &readCloser{
			Reader: dec,
			closers: []func() error{
				func() error { dec.Close(); return nil },
				f.Close,
			},
		}, nil
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), closers: []func() error{f.Close}}, nil
	}
	return f, nil
}

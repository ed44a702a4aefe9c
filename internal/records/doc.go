// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package records provides support for reading files of prioritized
// records, one per line, of the form:
//
//	<priority> [<payload>]
//
// where priority is a floating point number and payload is the remainder
// of the line with leading and trailing white space removed. Blank lines
// and lines whose first non-white space character is # are ignored.
// Files may be compressed using zstd (.zst), gzip (.gz) or lz4 (.lz4).
package records

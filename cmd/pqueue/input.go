// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/priority/internal/records"
)

// scanFile calls fn for every record in the named file and returns the
// number of records read.
func scanFile(ctx context.Context, name string, fn func(records.Record)) (int, error) {
	rd, err := records.Open(name)
	if err != nil {
		return 0, err
	}
	errs := &errors.M{}
	n := 0
	for rec, err := range records.Scan(rd) {
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", name, err))
			break
		}
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		fn(rec)
		n++
	}
	errs.Append(rd.Close())
	ctxlog.Logger(ctx).Debug("scanned", "file", name, "records", n)
	return n, errs.Err()
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// writeRecord writes a priority and payload in the same format that
// they are read.
func writeRecord(w *bufio.Writer, p float64, payload string) {
	w.WriteString(formatPriority(p))
	if len(payload) > 0 {
		w.WriteByte(' ')
		w.WriteString(payload)
	}
	w.WriteByte('\n')
}

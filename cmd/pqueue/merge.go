// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"context"
	"io"
	"iter"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/priority/internal/records"
	"cloudeng.io/priority/pqueue"
)

type mergeFlags struct {
	CommonFlags
}

func mergeCmd(ctx context.Context, values interface{}, args []string) error {
	return runMerge(ctx, values.(*mergeFlags), args, os.Stdout)
}

func runMerge(ctx context.Context, fv *mergeFlags, args []string, out io.Writer) error {
	ctx, _, done, err := setup(ctx, &fv.CommonFlags, "merge")
	if err != nil {
		return err
	}
	defer done()

	errs := &errors.M{}
	sources := make([]*records.Source, 0, len(args))
	seqs := make([]iter.Seq[records.Record], 0, len(args))
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			errs.Append(c.Close())
		}
	}
	for _, name := range args {
		rd, err := records.Open(name)
		if err != nil {
			errs.Append(err)
			closeAll()
			return errs.Err()
		}
		closers = append(closers, rd)
		src := records.NewSource(name, records.Scan(rd))
		sources = append(sources, src)
		seqs = append(seqs, src.Ascending())
	}

	failed := func() bool {
		for _, src := range sources {
			if src.Err() != nil {
				return true
			}
		}
		return false
	}

	wr := bufio.NewWriter(out)
	byPriority := func(a, b records.Record) int {
		return cmp.Compare(a.Priority, b.Priority)
	}
	for rec := range pqueue.MergeFunc(byPriority, seqs...) {
		if failed() {
			break
		}
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		writeRecord(wr, rec.Priority, rec.Payload)
	}
	for _, src := range sources {
		errs.Append(src.Err())
	}
	errs.Append(wr.Flush())
	closeAll()
	return errs.Err()
}

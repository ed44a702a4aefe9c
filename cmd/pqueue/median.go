// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"cloudeng.io/priority/internal/records"
	"cloudeng.io/priority/median"
)

type medianFlags struct {
	CommonFlags
	Running bool `subcmd:"running,false,'print the median after every record rather than once at the end'"`
}

func medianCmd(ctx context.Context, values interface{}, args []string) error {
	return runMedian(ctx, values.(*medianFlags), args, os.Stdout)
}

func runMedian(ctx context.Context, fv *medianFlags, args []string, out io.Writer) error {
	ctx, _, done, err := setup(ctx, &fv.CommonFlags, "median")
	if err != nil {
		return err
	}
	defer done()
	mt := median.New[float64]()
	wr := bufio.NewWriter(out)
	for _, name := range args {
		_, err := scanFile(ctx, name, func(r records.Record) {
			mt.Add(r.Priority)
			if fv.Running {
				m, _ := mt.Median()
				writeRecord(wr, m, r.Payload)
			}
		})
		if err != nil {
			return err
		}
	}
	if !fv.Running {
		m, err := mt.Median()
		if err != nil {
			return err
		}
		writeRecord(wr, m, "")
	}
	return wr.Flush()
}

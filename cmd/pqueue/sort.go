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
	"cloudeng.io/priority/pqueue"
)

type sortFlags struct {
	CommonFlags
	Order string `subcmd:"order,,'min or max, overrides the config file when set'"`
}

func sortCmd(ctx context.Context, values interface{}, args []string) error {
	return runSort(ctx, values.(*sortFlags), args, os.Stdout)
}

// runSort reads all of the records and then builds a queue from them
// in a single pass, equal priorities are printed in the order in which
// they were read.
func runSort(ctx context.Context, fv *sortFlags, args []string, out io.Writer) error {
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags, "sort")
	if err != nil {
		return err
	}
	defer done()
	_, order, err := cfg.apply(0, fv.Order)
	if err != nil {
		return err
	}
	var priorities []float64
	var payloads []string
	for _, name := range args {
		_, err := scanFile(ctx, name, func(r records.Record) {
			priorities = append(priorities, r.Priority)
			payloads = append(payloads, r.Payload)
		})
		if err != nil {
			return err
		}
	}
	wr := bufio.NewWriter(out)
	for p, payload := range pqueue.Heapify(order, priorities, payloads).Drain() {
		writeRecord(wr, p, payload)
	}
	return wr.Flush()
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/priority/internal/records"
	"cloudeng.io/priority/pqueue"
	"cloudeng.io/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func topkCmd(ctx context.Context, values interface{}, args []string) error {
	return runTopK(ctx, values.(*topkFlags), args, os.Stdout)
}

func runTopK(ctx context.Context, fv *topkFlags, args []string, out io.Writer) error {
	ctx, cfg, done, err := setup(ctx, &fv.CommonFlags, "topk")
	if err != nil {
		return err
	}
	defer done()
	k, order, err := cfg.apply(fv.K, fv.Order)
	if err != nil {
		return err
	}

	// Each file is scanned concurrently into its own Bounded, these are
	// then combined in the order in which the files were specified so
	// that ties are resolved in favour of earlier files.
	perFile := make([]*pqueue.Bounded[float64, string], len(args))
	counts := make([]int, len(args))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range args {
		g.Go(func() error {
			b := pqueue.NewBounded[float64, string](order, k)
			n, err := scanFile(gctx, name, func(r records.Record) {
				b.Offer(r.Priority, r.Payload)
			})
			perFile[i], counts[i] = b, n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	all := pqueue.NewBounded[float64, string](order, k)
	total := 0
	for i, b := range perFile {
		for _, it := range b.Sorted() {
			all.Offer(it.Priority, it.Value)
		}
		total += counts[i]
	}
	ctxlog.Logger(ctx).Info("selected", "k", k, "order", order.String(), "records", total)

	wr := bufio.NewWriter(out)
	for _, it := range all.Sorted() {
		writeRecord(wr, it.Priority, it.Value)
	}
	printer := message.NewPrinter(language.English)
	printer.Fprintf(wr, "# %v records from %v files\n", total, len(args))
	return wr.Flush()
}

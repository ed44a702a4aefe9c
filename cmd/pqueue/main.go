// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqueue selects, merges, sorts and summarizes files of prioritized
// records. Each record is a line of the form '<priority> [<payload>]'.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: pqueue
summary: select, merge, sort and summarize files of prioritized records
commands:
  - name: topk
    summary: print the k highest, or lowest, priority records from all of the specified files
    arguments:
      - <file>
      - ...
  - name: merge
    summary: merge files whose records are sorted in ascending order of priority
    arguments:
      - <file>
      - ...
  - name: median
    summary: print the median priority of the records in all of the specified files
    arguments:
      - <file>
      - ...
  - name: sort
    summary: print all of the records in the specified files in priority order
    arguments:
      - <file>
      - ...
  - name: config
    summary: print the configuration that results from the config file and flags
`

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(commands)
	cmdSet.Set("topk").MustRunnerAndFlags(topkCmd,
		subcmd.MustRegisteredFlagSet(&topkFlags{}))
	cmdSet.Set("merge").MustRunnerAndFlags(mergeCmd,
		subcmd.MustRegisteredFlagSet(&mergeFlags{}))
	cmdSet.Set("median").MustRunnerAndFlags(medianCmd,
		subcmd.MustRegisteredFlagSet(&medianFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(sortCmd,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("config").MustRunnerAndFlags(configCmd,
		subcmd.MustRegisteredFlagSet(&topkFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

/*
Package status holds the per-file outcome model of a formatting run and the
formatters that turn it into console notices.

	+-----------+      +-----------+      +---------------+
	|  Outcome  | ---> |  Summary  | ---> | FileFormatter |
	| (per file)|      | (derived) |      |  (notices)    |
	+-----------+      +-----------+      +---------------+

🎯 Purpose:
- Records whether a file was modified or skipped
- Derives the aggregate counts once a run is over
- Renders "<path> is modified" / "<path> is skipped" notices and the summary line

🔍 Example:

	outcomes := []status.Outcome{{Path: "a.view.lkml", Modified: true}}
	sum := status.Summarize(outcomes, 0)
	fmt.Println(status.NewDefaultFileFormatter().FormatSummary(sum))
	// 1 files are modified, 0 files are skipped.
*/
package status

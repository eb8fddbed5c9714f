/*
Package pipeline implements the read → transform → compare → report loop that
drives a formatting run.

	+------------+      +-------------+      +-------------+
	|  discover  | ---> |   Runner    | ---> |  Reporter   |
	|  (paths)   |      | (per file)  |      | (notices)   |
	+------------+      +------+------+      +-------------+
	                           |
	              +------------+------------+
	              |                         |
	        +-----+-----+             +-----+-----+
	        |   WRITE   |             |   CHECK   |
	        | (persist) |             |  (diff)   |
	        +-----------+             +-----------+

🎯 Purpose:
- Processes files strictly one after the other, in discovery order
- Records one status.Outcome per processed file
- Writes transformed content back (WRITE) or reports a diff (CHECK)
- Aggregates the outcomes into a status.Summary and an exit code

⚡ Error policy:
- fail-fast (default): the first read, transform or write error stops the run
- continue-on-error: failures are reported and collected, the run goes on

A CHECK run never writes. It fails (exit code 1) when at least one file would
be modified.

🔍 Example:

	runner, err := pipeline.New(pipeline.Options{
		Mode:        pipeline.ModeCheck,
		Transformer: formatter,
		Reporter:    logger,
	})
	if err != nil {
		return err
	}
	result, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}
	os.Exit(result.ExitCode())
*/
package pipeline

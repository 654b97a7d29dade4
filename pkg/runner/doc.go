/*
Package runner implements the execution loop and I/O orchestration for the primer engine.

It acts as the bridge between the flow engine and the console. The Runner repeats
Render -> Output -> Input -> Navigate until the flow terminates, delegating all I/O to
a pluggable IOHandler.

# Key Components

  - Runner: The loop driver.
  - IOHandler: Decouples how actions are presented and how input is read.
  - TextHandler: Plain console I/O; prompts are printed verbatim.
  - JSONHandler: NDJSON I/O for scripted hosts.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if _, err := r.Run(ctx, engine, state); err != nil {
		log.Fatal(err)
	}
*/
package runner

/*
Package primer runs a short introductory programming lesson as an interactive console flow.

The lesson prints a few variables, greets the learner, grades a score, counts to five,
lists some fruits, asks for a favorite color, and finishes with a Student studying Python.
It is expressed as a linear flow of nodes: text nodes render a template, the single
question node blocks for one line of input, and logic nodes call registered Go functions.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/primer"
	)

	func main() {
		if err := primer.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

For finer control, build an Engine and drive it yourself:

	eng, err := primer.New()
	if err != nil {
		log.Fatal(err)
	}

	state, err := eng.Start(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for !state.Terminated {
		actions, _, err := eng.Render(ctx, state)
		// ... present actions, collect input when a REQUEST_INPUT action is present
		state, err = eng.Navigate(ctx, state, input)
	}
*/
package primer

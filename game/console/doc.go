// Package console runs the interactive terminal loop for the 15-puzzle.
//
// A Game reads one command per line from an io.Reader, maps it to a
// direction through the active configuration's key bindings, applies it to
// the engine and renders the grid to an io.Writer. The loop ends when the
// puzzle is solved, the player quits, or the input stream closes.
//
// Usage:
//
//	eng := engine.NewEngineWithDefaults()
//	game := console.NewGame(eng, os.Stdin, os.Stdout)
//	result, err := game.Run(ctx)
package console

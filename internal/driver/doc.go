// Package driver runs the corec front end for one invocation.
//
// A Session owns the FileSet and the diagnostics Bag of a run. Phases report
// into the Bag; the session decides at checkpoints (after lexing, after every
// top-level declaration, at the end of the parse) whether to drain the queue
// and abort. Aborting never exits the process: it writes the drained records
// and the notice, then returns ErrAborted for the command layer to map onto
// an exit status.
package driver

// Package trace is the structured event log of the corec front end.
//
// Tracing is switched on from the command line:
//
//	corec check --trace=- --trace-level=phase main.core
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only drain/abort events
//   - LevelPhase: driver and pass boundaries (lex, parse, drain)
//   - LevelDetail: checkpoints after every top-level declaration
//   - LevelDebug: everything, node-level events included
//
// # Scopes
//
//   - ScopeDriver: one CLI operation, one session
//   - ScopePass: lexing, parsing, rendering
//   - ScopeNode: one top-level declaration
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace

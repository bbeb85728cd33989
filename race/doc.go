// Package race orchestrates several step traces racing under one clock.
//
// A Manager is one race session. It is owned by whoever constructs it; there
// is no package-level instance. Its state machine is
//
//	Idle ─Start─▶ Running ─Pause─▶ Paused ─Resume─▶ Running
//	Running ─(every participant completed)─▶ Completed
//	any ─Reset─▶ Idle
//
// The Manager never reads traces itself. A driver reports each participant's
// cursor through Advance; when the cursor reaches the trace length the
// participant completes exactly once, at the instant now − origin measured
// by the Manager's Clock. The ranking is the stable ascending sort of those
// instants, so equal instants keep call order, and the winner is fixed at
// the first completion.
//
// Runner is the driver used by the CLI: it holds one pre-generated trace per
// participant and, on every tick, advances each unfinished participant by
// one step in registration order. Run paces ticks with a token-bucket
// limiter (golang.org/x/time/rate) and an optional per-tick delay, and stops
// at completion, on context cancellation or after MaxTicks.
//
// Errors (sentinel):
//
//   - ErrInvalidConfiguration  fewer than two participants, empty or duplicate names.
//   - ErrSessionActive         Start outside Idle.
//   - ErrInvalidTransition     Pause outside Running, Resume outside Paused.
//   - ErrNotRunning            Runner.Run on a session that is not running.
//   - ErrTickLimit             Runner.Run exceeded MaxTicks.
package race

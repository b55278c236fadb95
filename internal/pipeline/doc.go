// Package pipeline runs a link scan as a sequence of steps.
//
// A scan goes through three stages: file discovery, link extraction, and
// link checking. Each stage is a Step that receives the current report and
// adds to it. Reporting is not a step: the check step hands every record to
// a callback in discovery order, so results can be printed as they are found.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It provides consistent error handling and logging across stages
// 2. It supports cancellation via context between stages
// 3. Tests can run a single stage against a hand-built report
//
// Checking is sequential by default. BatchChecker can run several checks at
// once with errgroup, but it still delivers results in discovery order, so
// the output of a run does not depend on the concurrency setting.
package pipeline

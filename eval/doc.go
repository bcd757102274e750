// Package eval provides a memoizing evaluator for basis functions over a
// fixed dataset.
//
// External model-search systems evaluate large pools of candidate bases
// against the same matrix, and structurally identical bases recur across
// candidates. Evaluator binds one dataset and caches simulation vectors
// keyed by basis fingerprint, so each distinct expression is computed once
// per TTL window:
//
//	ev, err := eval.NewEvaluator(x, eval.WithTTL(time.Minute))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := ev.Simulate(b) // cached by basis.Fingerprint(b)
//
// Cached vectors are returned by reference; callers must treat them as
// read-only. The evaluator is safe for concurrent use.
package eval

/*
Package psort provides a parallel merge sort built on an explicit fork/join
scheduler.

Sort recursively splits its input at the midpoint, forks the right half's
sort as an independently schedulable task, sorts the left half on the
current goroutine, joins, and merges back into the original storage. The
fork tree is binary with depth log2(n); a merge at any level only starts
once both of its halves are fully sorted.

Basic usage:

	import "github.com/theflywheel/dstructs/psort"

	pool := psort.NewPool(0) // one worker per CPU
	nums := []int{4, 3, 9, 1}
	psort.Sort(pool, nums) // nums is now [1 3 4 9]

The Scheduler decides where forked work runs. NewPool bounds concurrency
with inline fallback once saturated; Sequential runs everything on the
caller, turning the same algorithm into an ordinary recursive merge sort.
Fork and Task are exported so callers can reuse the same fork/join shape
for their own divide-and-conquer work.

The slice being sorted is owned by the call for its whole duration; mutating
it from another goroutine while Sort runs is undefined behavior. There is no
cancellation: a submitted sort runs to completion.
*/
package psort

// This file parallelizes the pointwise stage of the cyclic multiplier.

package trifft

import "golang.org/x/sync/errgroup"

// pointwiseParallel runs the r independent block products of the cyclic
// multiplier concurrently. Each worker multiplies into pooled private
// working space and copies only the m result cells back into the shared
// output, so the result is identical to the sequential pass regardless of
// scheduling.
//
// The shared tmp scratch of the enclosing call cannot be used here; each
// task acquires its own transform scratch sized for the inner split of m.
func pointwiseParallel(pp, qq, to []elem, m, r, workers int) {
	ms := splitSize(m)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < r; i++ {
		g.Go(func() error {
			work := acquireBuf(mulWorkspace(m))
			tmp := acquireBuf(3 * ms)
			mulModOmega(pp[i*m:i*m+m], qq[i*m:i*m+m], m, work, tmp)
			copy(to[i*m:i*m+m], work[:m])
			releaseBuf(tmp)
			releaseBuf(work)
			return nil
		})
	}
	// The tasks never return an error; Wait is only a barrier.
	_ = g.Wait()
}

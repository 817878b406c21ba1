// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree contiguous buckets
//  Note: bucket sizes differ by one at most; the first buckets get the remainder
type PartitionMap struct {
	MaxIndex       int      // number of items
	ParallelDegree int      // number of buckets
	Partitions     [][2]int // [ParallelDegree] {kMin, kMax} of each bucket
}

// NewPartitionMap returns a new PartitionMap
func NewPartitionMap(parallelDegree, maxIndex int) (pm *PartitionMap) {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	pm = &PartitionMap{MaxIndex: maxIndex, ParallelDegree: parallelDegree}
	pm.Partitions = make([][2]int, parallelDegree)
	base, rem := maxIndex/parallelDegree, maxIndex%parallelDegree
	var kMin int
	for np := 0; np < parallelDegree; np++ {
		size := base
		if np < rem {
			size++
		}
		pm.Partitions[np] = [2]int{kMin, kMin + size}
		kMin += size
	}
	return
}

// GetBucketRange returns the range of indices of bucket np
func (pm *PartitionMap) GetBucketRange(np int) (kMin, kMax int) {
	return pm.Partitions[np][0], pm.Partitions[np][1]
}

// GetBucketDimension returns the number of indices in bucket np
func (pm *PartitionMap) GetBucketDimension(np int) int {
	kMin, kMax := pm.GetBucketRange(np)
	return kMax - kMin
}

// GetParallelDegree returns the number of workers for nitems items
//  nthreads -- configured number of threads; <= 0 means runtime.NumCPU()
func GetParallelDegree(nthreads, nitems int) int {
	if nthreads <= 0 {
		nthreads = runtime.NumCPU()
	}
	if nthreads > nitems {
		nthreads = nitems
	}
	if nthreads < 1 {
		nthreads = 1
	}
	return nthreads
}

// runBuckets runs fcn for all buckets of [0, n) and waits for all of them (fork-join)
//  Note: all buckets run to completion; the first error is returned
func runBuckets(nthreads, n int, fcn func(np, kMin, kMax int) error) error {
	if n == 0 {
		return nil
	}
	pm := NewPartitionMap(GetParallelDegree(nthreads, n), n)
	if pm.ParallelDegree == 1 {
		return fcn(0, 0, n)
	}
	var g errgroup.Group
	g.SetLimit(pm.ParallelDegree)
	for np := 0; np < pm.ParallelDegree; np++ {
		np := np
		kMin, kMax := pm.GetBucketRange(np)
		g.Go(func() error { return fcn(np, kMin, kMax) })
	}
	return g.Wait()
}

// runSlices runs fcn with buckets of several index ranges at once; worker np handles the
// bucket np of each range
func runSlices(nthreads int, sizes []int, fcn func(np int, ranges [][2]int) error) error {
	var nmax int
	for _, n := range sizes {
		nmax = max(nmax, n)
	}
	if nmax == 0 {
		return nil
	}
	pd := GetParallelDegree(nthreads, nmax)
	pms := make([]*PartitionMap, len(sizes))
	for i, n := range sizes {
		pms[i] = NewPartitionMap(pd, n)
	}
	return runBuckets(pd, pd, func(_, kMin, kMax int) error {
		for np := kMin; np < kMax; np++ {
			ranges := make([][2]int, len(sizes))
			for i, pm := range pms {
				ranges[i] = pm.Partitions[np]
			}
			if err := fcn(np, ranges); err != nil {
				return err
			}
		}
		return nil
	})
}

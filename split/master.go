// Copyright 2025 go-polygcd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package split

import (
	"github.com/ajroetker/go-polygcd/threadpool"
)

// RunMaster runs one master's split loop: a single prime-claiming
// worker on the calling goroutine, folding images into its private
// accumulator until totalImages are collected. innerWorkers is that
// master's thread allotment beyond itself; the corresponding pool
// handles are reserved for the duration of the loop and handed to the
// worker so each image's modular GCD runs on the intra-image-threaded
// path. With innerWorkers == 0 (or no free handle in the pool) the
// worker computes its images serially.
//
// Prime-level parallelism comes from running several masters at once
// against the same Base, never from within one master.
func RunMaster(base *Base, totalImages, innerWorkers int, pool *threadpool.Pool) (*Accumulator, Status) {
	var handles []threadpool.Handle
	if pool != nil && innerWorkers > 0 {
		handles = pool.Request(innerWorkers)
		defer func() {
			for _, h := range handles {
				pool.GiveBack(h)
			}
		}()
	}
	return base.RunWorker(totalImages, pool, handles)
}

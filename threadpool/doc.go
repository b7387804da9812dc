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

// Package threadpool provides a persistent, reusable pool of worker
// goroutines addressed by handle, rather than by a single ParallelFor
// barrier: a caller reserves up to k handles with Request, hands each
// one a closure with Wake, and blocks on the matching Wait. This
// shape is what a master/worker split or join stage needs: one
// caller thread, holding no handle of its own, reuses itself as
// "worker 0" instead of blocking idle, and each handle can be woken
// and waited on independently of the others.
//
// Usage:
//
//	pool := threadpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	handles := pool.Request(4)
//	for _, h := range handles {
//	    h := h
//	    pool.Wake(h, func() { doWork(h) })
//	}
//	for _, h := range handles {
//	    pool.Wait(h)
//	    pool.GiveBack(h)
//	}
package threadpool

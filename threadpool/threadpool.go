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

package threadpool

import (
	"runtime"
	"sync"
)

// Handle identifies one reserved worker.
type Handle int

type worker struct {
	workC chan func()
	doneC chan struct{}
}

// Pool is a persistent pool of worker goroutines, spawned once at
// creation and addressed by Handle for the lifetime of the pool.
type Pool struct {
	mu        sync.Mutex
	workers   []*worker
	free      []Handle
	closeOnce sync.Once
}

// New creates a pool with the given number of workers. If n <= 0, uses
// GOMAXPROCS.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: make([]*worker, n),
		free:    make([]Handle, n),
	}
	for i := 0; i < n; i++ {
		w := &worker{workC: make(chan func()), doneC: make(chan struct{})}
		p.workers[i] = w
		p.free[i] = Handle(i)
		go p.run(w)
	}
	return p
}

func (p *Pool) run(w *worker) {
	for fn := range w.workC {
		fn()
		w.doneC <- struct{}{}
	}
}

// Size returns the total number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Request reserves up to k currently-free handles and returns them. It
// may return fewer than k (even zero) if the pool doesn't have that
// many free workers.
func (p *Pool) Request(k int) []Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	if k > len(p.free) {
		k = len(p.free)
	}
	if k <= 0 {
		return nil
	}
	out := append([]Handle(nil), p.free[:k]...)
	p.free = p.free[k:]
	return out
}

// Wake submits fn to run on handle's worker goroutine. The caller must
// eventually call Wait on the same handle before reusing or giving it
// back.
func (p *Pool) Wake(handle Handle, fn func()) {
	p.workers[handle].workC <- fn
}

// Wait blocks until the most recent Wake on handle has completed.
func (p *Pool) Wait(handle Handle) {
	<-p.workers[handle].doneC
}

// GiveBack returns handle to the free set so a later Request can reuse
// it.
func (p *Pool) GiveBack(handle Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, handle)
}

// Close shuts down every worker goroutine. Outstanding Wake calls must
// have been Waited on first. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		for _, w := range p.workers {
			close(w.workC)
		}
	})
}

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
	"sync/atomic"
	"testing"
)

func TestRequestBoundedBySize(t *testing.T) {
	p := New(2)
	defer p.Close()

	h := p.Request(5)
	if len(h) != 2 {
		t.Fatalf("Request(5) on a pool of 2 returned %d handles", len(h))
	}
	if more := p.Request(1); len(more) != 0 {
		t.Fatalf("Request should return nothing once all handles are out, got %v", more)
	}
}

func TestWakeWaitRunsWork(t *testing.T) {
	p := New(4)
	defer p.Close()

	handles := p.Request(4)
	var counter int64
	for _, h := range handles {
		h := h
		p.Wake(h, func() { atomic.AddInt64(&counter, 1) })
	}
	for _, h := range handles {
		p.Wait(h)
	}
	if counter != 4 {
		t.Fatalf("counter = %d, want 4", counter)
	}
}

func TestGiveBackAllowsReuse(t *testing.T) {
	p := New(1)
	defer p.Close()

	h := p.Request(1)
	p.Wake(h[0], func() {})
	p.Wait(h[0])
	p.GiveBack(h[0])

	h2 := p.Request(1)
	if len(h2) != 1 {
		t.Fatalf("expected handle to be reusable after GiveBack")
	}
}

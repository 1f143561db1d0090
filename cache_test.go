// Copyright 2021 Josh Deprez
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

package messageformat

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPatternCacheParsesOnce(t *testing.T) {
	c := &patternCache{}
	var calls int32
	parseFn := func(src string) (*pattern, error) {
		atomic.AddInt32(&calls, 1)
		return parse(src)
	}

	const src = "Hello, {name}!"
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.get(src, parseFn); err != nil {
				t.Errorf("get: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("parseFn called %d times, want 1", got)
	}
}

func TestPatternCacheDistinctKeys(t *testing.T) {
	c := &patternCache{}
	p1, err := c.get("a {x}", parse)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p2, err := c.get("b {y}", parse)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p1 == p2 {
		t.Error("distinct pattern strings returned the same cached *pattern")
	}
}

func TestPatternCacheCachesParseError(t *testing.T) {
	c := &patternCache{}
	_, err1 := c.get("{unterminated", parse)
	if err1 == nil {
		t.Fatal("get: want parse error")
	}
	_, err2 := c.get("{unterminated", parse)
	if err2 == nil {
		t.Fatal("get (cached): want parse error")
	}
}

func TestFormatterUsesCacheOptIn(t *testing.T) {
	f := New(Options{UseCache: true})
	const pattern = "Hi {name}"
	if _, err := f.Format(pattern, Args{"name": "a"}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	p1, err := f.parsePattern(pattern)
	if err != nil {
		t.Fatalf("parsePattern: %v", err)
	}
	p2, err := f.parsePattern(pattern)
	if err != nil {
		t.Fatalf("parsePattern: %v", err)
	}
	if p1 != p2 {
		t.Error("cached Formatter reparsed an identical pattern string")
	}
}

func TestFormatterWithoutCacheReparses(t *testing.T) {
	f := New(Options{UseCache: false})
	const pattern = "Hi {name}"
	p1, err := f.parsePattern(pattern)
	if err != nil {
		t.Fatalf("parsePattern: %v", err)
	}
	p2, err := f.parsePattern(pattern)
	if err != nil {
		t.Fatalf("parsePattern: %v", err)
	}
	if p1 == p2 {
		t.Error("uncached Formatter returned the same *pattern twice, want independent parses")
	}
}

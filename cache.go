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

import "sync"

// patternCache memoizes parse output keyed by the exact pattern
// string. It is per-Formatter, never global, so two Formatters with
// different custom TypeFormatters or pluralizer overrides never share
// parse results across configurations that might validate a pattern
// differently.
type patternCache struct {
	entries sync.Map // string -> *cacheEntry
}

type cacheEntry struct {
	once    sync.Once
	pattern *pattern
	err     error
}

// get returns the parsed pattern for src, computing it via parseFn at
// most once per key even under concurrent callers racing on a cache
// miss: LoadOrStore installs a single *cacheEntry per key, and its
// sync.Once makes every other caller wait for that one parse. A parse
// error is cached the same way as a successful parse.
func (c *patternCache) get(src string, parseFn func(string) (*pattern, error)) (*pattern, error) {
	actual, _ := c.entries.LoadOrStore(src, &cacheEntry{})
	entry := actual.(*cacheEntry)
	entry.once.Do(func() {
		entry.pattern, entry.err = parseFn(src)
	})
	return entry.pattern, entry.err
}

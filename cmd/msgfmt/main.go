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

// The msgfmt binary renders one ICU MessageFormat pattern against a
// JSON argument object and prints the result.
//
// Usage:
//
//	go run ./cmd/msgfmt \
//	    --pattern="You have {n, plural, =0{no items} one{one item} other{# items}}." \
//	    --args='{"n": 3}' \
//	    --lang=en
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ansel1/console-slog"

	"github.com/locaxis/messageformat"
)

func main() {
	pattern := flag.String("pattern", "", "ICU MessageFormat pattern to render")
	argsJSON := flag.String("args", "{}", "JSON object of named arguments")
	lang := flag.String("lang", "en", "BCP 47 locale tag")
	cache := flag.Bool("cache", false, "enable the pattern cache")
	verbose := flag.Bool("v", false, "log trace events to stderr")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "msgfmt: --pattern is required")
		os.Exit(2)
	}

	var args messageformat.Args
	if err := json.Unmarshal([]byte(*argsJSON), &args); err != nil {
		log.Fatalf("couldn't parse --args as JSON: %v", err)
	}

	opts := messageformat.Options{
		UseCache: *cache,
		Locale:   *lang,
	}
	if *verbose {
		logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts.Trace = func(event string, fields ...interface{}) {
			logger.Debug(event, fields...)
		}
	}

	f := messageformat.New(opts)
	out, err := f.FormatLocale(*pattern, args, *lang)
	if err != nil {
		log.Fatalf("format error: %v", err)
	}
	fmt.Println(out)
}

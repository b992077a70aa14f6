// Corovet reports misuse of the coroutine API: handles escaping the body they
// were passed to, and yields from foreign goroutines.
//
// Usage:
//
//	corovet [flags] [packages...]
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/yieldpoint/coro/corovet"
)

func main() {
	singlechecker.Main(corovet.Analyzer)
}

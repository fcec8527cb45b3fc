//go:build !unix

package fault

import (
	"os"
	"time"
)

func terminate(sig os.Signal, _ time.Duration) {
	os.Exit(exitCode(sig))
}

// Command comandemo runs small demonstration scenarios on the cooperative
// scheduler.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	Execute()
	atexit.Exit(0)
}

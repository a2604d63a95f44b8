package main

import (
	"github.com/neuromesh-project/neuromesh/cmd/neuromesh"
	_ "github.com/neuromesh-project/neuromesh/pkg/logger"
)

// Values for version are injected by the build.
var (
	VERSION = ""
)

func main() {
	neuromesh.Execute(VERSION)
}

package main

import (
	"github.com/robotalks/dbgout/pkg/cli/sh"
	"github.com/robotalks/dbgout/pkg/env"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}

package main

import (
	"github.com/robotalks/uartsim/pkg/cli/sh"
	"github.com/robotalks/uartsim/pkg/sim"
	"github.com/robotalks/uartsim/pkg/top"

	_ "github.com/robotalks/uartsim/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	top.SetupFlags()
	sim.SetupFlags()
}

func main() {
	sh.Main()
}

// Package all registers every shell command.
package all

import (
	_ "github.com/robotalks/uartsim/pkg/cli/cmds/probe"
	_ "github.com/robotalks/uartsim/pkg/cli/cmds/sim"
)

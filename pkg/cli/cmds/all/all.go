// Package all pulls in every shell command provider.
package all

import (
	_ "github.com/thermalview/lepton.go/pkg/cli/cmds/camera"
	_ "github.com/thermalview/lepton.go/pkg/cli/cmds/system"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cxxcmd/internal/adapters/config"
	_ "go.trai.ch/cxxcmd/internal/adapters/logger"
	_ "go.trai.ch/cxxcmd/internal/adapters/shell"
	_ "go.trai.ch/cxxcmd/internal/adapters/telemetry"
	_ "go.trai.ch/cxxcmd/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/cxxcmd/internal/app"
)

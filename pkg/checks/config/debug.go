// Package config contains built-in checks inspecting the host application's
// own configuration once it has been loaded.
package config

import (
	"context"

	"appdoctor/pkg/doctor/check"
)

// DebugCheck warns when the host configuration leaves debug mode enabled,
// which leaks internals and slows the application down.
type DebugCheck struct {
	check.Base
}

// NewDebugCheck creates the config.debug check.
func NewDebugCheck() *DebugCheck {
	return &DebugCheck{
		Base: check.Base{
			CheckID:          "config.debug",
			CheckDescription: "Warns when the host configuration enables debug mode",
			CheckStage:       check.StageConfigLoaded,
		},
	}
}

func (c *DebugCheck) Run(_ context.Context, target *check.Target) (*check.Result, error) {
	if enabled(target.Config["debug"]) {
		return check.Warning("debug mode is enabled in the host configuration"), nil
	}

	return check.Success("debug mode is disabled"), nil
}

func enabled(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "on"
	case float64:
		// YAML numbers decode as float64
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

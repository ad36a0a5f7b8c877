// Package checks wires the built-in check set into a registry. Built-ins are
// registered explicitly at command construction time; user configuration may
// later override any of them by name.
package checks

import (
	configchecks "appdoctor/pkg/checks/config"
	"appdoctor/pkg/checks/files"
	"appdoctor/pkg/checks/install"
	"appdoctor/pkg/doctor/check"
)

// RegisterBuiltins registers every built-in check. Registration order is the
// default execution order when no names are requested.
func RegisterBuiltins(r *check.Registry) {
	factories := []check.Factory{
		func() check.Check { return install.NewWritableCheck() },
		func() check.Check { return install.NewVersionCheck() },
		func() check.Check { return configchecks.NewDebugCheck() },
		func() check.Check { return files.NewLeftoversCheck() },
		func() check.Check { return files.NewLogsCheck() },
	}

	for _, factory := range factories {
		// Name and documentation come from the check's own metadata so the
		// registry never drifts from the implementation.
		c := factory()
		r.MustRegister(c.ID(), c.Description(), factory)
	}
}

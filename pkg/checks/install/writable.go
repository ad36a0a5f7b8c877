// Package install contains built-in checks validating the host installation
// itself: filesystem permissions and the installed version.
package install

import (
	"context"
	"os"

	"appdoctor/pkg/doctor/check"
)

// WritableCheck verifies the installation root accepts writes. The host
// application cannot update itself or write caches on a read-only root.
type WritableCheck struct {
	check.Base
}

// NewWritableCheck creates the install.writable check.
func NewWritableCheck() *WritableCheck {
	return &WritableCheck{
		Base: check.Base{
			CheckID:          "install.writable",
			CheckDescription: "Verifies the installation root directory is writable",
			CheckStage:       check.StagePreInit,
		},
	}
}

func (c *WritableCheck) Run(_ context.Context, target *check.Target) (*check.Result, error) {
	probe, err := os.CreateTemp(target.Root, ".appdoctor-*")
	if err != nil {
		return check.Error("installation root is not writable: " + err.Error()), nil
	}

	name := probe.Name()
	_ = probe.Close()

	if err := os.Remove(name); err != nil {
		return nil, err
	}

	return check.Success("installation root is writable"), nil
}

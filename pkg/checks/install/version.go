package install

import (
	"context"
	"fmt"

	"github.com/blang/semver/v4"

	"appdoctor/pkg/doctor/check"
)

// MinSupportedVersion is the oldest host application version this tooling
// supports diagnosing.
const MinSupportedVersion = "2.0.0"

// VersionCheck compares the detected host application version against the
// minimum supported version. It needs the fully initialized host, since
// version detection is only resolved at the end of the bootstrap.
type VersionCheck struct {
	check.Base

	// minimum overrides MinSupportedVersion when set (tests)
	minimum string
}

// NewVersionCheck creates the install.version check.
func NewVersionCheck() *VersionCheck {
	return &VersionCheck{
		Base: check.Base{
			CheckID:          "install.version",
			CheckDescription: "Verifies the host application version is still supported",
			CheckStage:       check.StagePostInit,
		},
	}
}

func (c *VersionCheck) Run(_ context.Context, target *check.Target) (*check.Result, error) {
	if target.Version == "" {
		return check.Warning("host application version could not be detected"), nil
	}

	current, err := semver.ParseTolerant(target.Version)
	if err != nil {
		return check.Error(fmt.Sprintf("host version %q does not parse: %v", target.Version, err)), nil
	}

	minStr := c.minimum
	if minStr == "" {
		minStr = MinSupportedVersion
	}

	minimum, err := semver.ParseTolerant(minStr)
	if err != nil {
		return nil, fmt.Errorf("parsing minimum supported version: %w", err)
	}

	if current.LT(minimum) {
		return check.Warning(fmt.Sprintf("host version %s is older than the minimum supported %s", current, minimum)), nil
	}

	return check.Success(fmt.Sprintf("host version %s is supported", current)), nil
}

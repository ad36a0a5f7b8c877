// Package files contains built-in file checks: probes fed individual files
// during the tree walk of the installation root.
package files

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"appdoctor/pkg/doctor/check"
)

// maxListedPaths bounds how many offending paths a message enumerates.
const maxListedPaths = 5

// LeftoversCheck flags editor and merge leftovers (.bak, .orig, .rej) inside
// the installation tree. They are never shipped by the host application and
// usually mean a manual patch was applied in place.
type LeftoversCheck struct {
	check.Base

	matches []string
}

// NewLeftoversCheck creates the files.leftovers check.
func NewLeftoversCheck() *LeftoversCheck {
	return &LeftoversCheck{
		Base: check.Base{
			CheckID:          "files.leftovers",
			CheckDescription: "Flags editor and merge leftovers (.bak, .orig, .rej) in the installation tree",
			CheckStage:       check.StagePreInit,
		},
	}
}

func (c *LeftoversCheck) Extensions() []string {
	return []string{"bak", "orig", "rej"}
}

func (c *LeftoversCheck) CheckFile(path string, _ fs.DirEntry) error {
	c.matches = append(c.matches, path)

	return nil
}

func (c *LeftoversCheck) Run(_ context.Context, _ *check.Target) (*check.Result, error) {
	if len(c.matches) == 0 {
		return check.Success("no editor or merge leftovers found"), nil
	}

	listed := c.matches
	suffix := ""

	if len(listed) > maxListedPaths {
		listed = listed[:maxListedPaths]
		suffix = fmt.Sprintf(" and %d more", len(c.matches)-maxListedPaths)
	}

	return check.Warning(fmt.Sprintf("%d leftover file(s) found: %s%s",
		len(c.matches), strings.Join(listed, ", "), suffix)), nil
}

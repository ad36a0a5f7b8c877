package files

import (
	"context"
	"fmt"
	"io/fs"

	"appdoctor/pkg/doctor/check"
)

// logSizeWarnBytes is the accumulated log size above which the check warns.
const logSizeWarnBytes = 64 << 20

// LogsCheck sums the size of .log files in the installation tree and warns
// when they accumulate past the threshold, a sign rotation is not configured.
type LogsCheck struct {
	check.Base

	count int
	total int64
}

// NewLogsCheck creates the files.logs check.
func NewLogsCheck() *LogsCheck {
	return &LogsCheck{
		Base: check.Base{
			CheckID:          "files.logs",
			CheckDescription: "Warns when log files accumulate past the rotation threshold",
			CheckStage:       check.StagePreInit,
		},
	}
}

func (c *LogsCheck) Extensions() []string {
	return []string{"log"}
}

func (c *LogsCheck) CheckFile(_ string, entry fs.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}

	c.count++
	c.total += info.Size()

	return nil
}

func (c *LogsCheck) Run(_ context.Context, _ *check.Target) (*check.Result, error) {
	if c.total > logSizeWarnBytes {
		return check.Warning(fmt.Sprintf("%d log file(s) holding %d bytes; rotation appears unconfigured",
			c.count, c.total)), nil
	}

	return check.Success(fmt.Sprintf("%d log file(s) holding %d bytes", c.count, c.total)), nil
}

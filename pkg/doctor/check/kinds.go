package check

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mapstructure "github.com/go-viper/mapstructure/v2"
)

// Declarative check kinds instantiable from configuration sources. Each kind
// is a small, parameterized implementation of the Check (or FileCheck)
// contract; the configuration entry supplies the name, documentation, and
// parameters.
const (
	// KindPathExists verifies the presence (or absence) of a path relative
	// to the installation root.
	KindPathExists = "path-exists"

	// KindFileExtension counts files with the given extensions during the
	// tree walk and reports when thresholds are exceeded.
	KindFileExtension = "file-extension"
)

// buildConfiguredCheck resolves a config entry's kind to a check factory.
func buildConfiguredCheck(entry configEntry) (Factory, error) {
	switch entry.Kind {
	case KindPathExists:
		var params pathExistsParams
		if err := decodeParams(entry.Params, &params); err != nil {
			return nil, err
		}
		if params.Path == "" {
			return nil, fmt.Errorf("kind %s: path parameter is required", entry.Kind)
		}

		return func() Check {
			return &pathExistsCheck{
				Base: Base{
					CheckID:          entry.Name,
					CheckDescription: entry.Doc,
					CheckStage:       StagePreInit,
				},
				params: params,
			}
		}, nil

	case KindFileExtension:
		var params fileExtensionParams
		if err := decodeParams(entry.Params, &params); err != nil {
			return nil, err
		}
		if len(params.Extensions) == 0 {
			return nil, fmt.Errorf("kind %s: extensions parameter is required", entry.Kind)
		}

		return func() Check {
			return &fileExtensionCheck{
				Base: Base{
					CheckID:          entry.Name,
					CheckDescription: entry.Doc,
					CheckStage:       StagePreInit,
				},
				params: params,
			}
		}, nil

	default:
		return nil, fmt.Errorf("unknown check kind %q", entry.Kind)
	}
}

// decodeParams decodes a raw params map into a typed parameter struct,
// rejecting unknown keys so configuration typos fail cleanly.
func decodeParams(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return fmt.Errorf("building params decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding params: %w", err)
	}

	return nil
}

type pathExistsParams struct {
	// Path is relative to the installation root
	Path string `mapstructure:"path"`

	// Writable additionally requires write permission on the path
	Writable bool `mapstructure:"writable"`

	// WantAbsent inverts the check: the path must NOT exist
	WantAbsent bool `mapstructure:"wantAbsent"`
}

type pathExistsCheck struct {
	Base

	params pathExistsParams
}

func (c *pathExistsCheck) Run(_ context.Context, target *Target) (*Result, error) {
	full := filepath.Join(target.Root, c.params.Path)

	info, err := os.Stat(full)

	switch {
	case c.params.WantAbsent:
		if err == nil {
			return Warning(fmt.Sprintf("%s exists but should be removed", c.params.Path)), nil
		}
		if os.IsNotExist(err) {
			return Success(fmt.Sprintf("%s is absent", c.params.Path)), nil
		}

		return nil, err

	case os.IsNotExist(err):
		return Error(fmt.Sprintf("%s is missing", c.params.Path)), nil

	case err != nil:
		return nil, err
	}

	if c.params.Writable {
		if err := probeWritable(full, info.IsDir()); err != nil {
			return Error(fmt.Sprintf("%s is not writable: %v", c.params.Path, err)), nil
		}
	}

	return Success(fmt.Sprintf("%s is present", c.params.Path)), nil
}

// probeWritable verifies write access by attempting an actual write: a
// temporary file for directories, opening for append for regular files.
// Permission bits alone lie under ACLs and read-only mounts.
func probeWritable(path string, isDir bool) error {
	if isDir {
		probe, err := os.CreateTemp(path, ".appdoctor-*")
		if err != nil {
			return err
		}
		name := probe.Name()
		_ = probe.Close()

		return os.Remove(name)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}

	return f.Close()
}

type fileExtensionParams struct {
	Extensions []string `mapstructure:"extensions"`

	// WarnAbove is the match count above which the result is a warning
	WarnAbove int `mapstructure:"warnAbove"`

	// ErrorAbove is the match count above which the result is an error;
	// zero means never
	ErrorAbove int `mapstructure:"errorAbove"`

	// Message overrides the default finding message
	Message string `mapstructure:"message"`
}

type fileExtensionCheck struct {
	Base

	params  fileExtensionParams
	matches []string
}

func (c *fileExtensionCheck) Extensions() []string {
	return c.params.Extensions
}

func (c *fileExtensionCheck) CheckFile(path string, _ fs.DirEntry) error {
	c.matches = append(c.matches, path)

	return nil
}

func (c *fileExtensionCheck) Run(_ context.Context, _ *Target) (*Result, error) {
	count := len(c.matches)

	message := c.params.Message
	if message == "" {
		message = fmt.Sprintf("%d matching file(s) found", count)
	} else {
		message = fmt.Sprintf("%s (%d matching file(s))", message, count)
	}

	switch {
	case c.params.ErrorAbove > 0 && count > c.params.ErrorAbove:
		return Error(message), nil
	case count > c.params.WarnAbove:
		return Warning(message), nil
	default:
		return Success(fmt.Sprintf("%d matching file(s) found", count)), nil
	}
}

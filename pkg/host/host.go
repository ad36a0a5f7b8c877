// Package host models the host application's bootstrap as an opaque staged
// pipeline. The scheduler attaches stage listeners through OnStage and the
// pipeline fires them in a fixed order during Boot; listeners for a stage the
// boot never reaches are simply never invoked.
package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"appdoctor/pkg/doctor/check"
)

const (
	// ConfigFile is the host application's own configuration file, read at
	// the config-loaded stage when present.
	ConfigFile = "app.yaml"

	// VersionFile holds the installed host application version, resolved at
	// the post-init stage when present.
	VersionFile = "VERSION"
)

// Host is a minimal host application bootstrap pipeline rooted at an
// installation directory.
type Host struct {
	root     string
	handlers map[check.Stage][]check.StageHandler
}

// New creates a host pipeline for the installation rooted at root.
func New(root string) *Host {
	return &Host{
		root:     root,
		handlers: make(map[check.Stage][]check.StageHandler),
	}
}

// Root returns the installation root directory.
func (h *Host) Root() string {
	return h.root
}

// OnStage registers a listener for a bootstrap stage. Listeners fire in
// registration order when the stage is reached.
func (h *Host) OnStage(stage check.Stage, handler check.StageHandler) {
	h.handlers[stage] = append(h.handlers[stage], handler)
}

// Boot runs the bootstrap sequence: minimal setup, pre-init, configuration
// load, config-loaded, full initialization, post-init. The first failure
// aborts the sequence; listeners for later stages are never invoked.
func (h *Host) Boot(ctx context.Context) error {
	info, err := os.Stat(h.root)
	if err != nil {
		return fmt.Errorf("host root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("host root %s is not a directory", h.root)
	}

	target := &check.Target{Root: h.root}

	if err := h.fire(ctx, check.StagePreInit, target); err != nil {
		return err
	}

	config, err := h.loadConfig()
	if err != nil {
		return err
	}
	target.Config = config

	if err := h.fire(ctx, check.StageConfigLoaded, target); err != nil {
		return err
	}

	target.Version = h.resolveVersion()

	return h.fire(ctx, check.StagePostInit, target)
}

func (h *Host) fire(ctx context.Context, stage check.Stage, target *check.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, handler := range h.handlers[stage] {
		if err := handler(target); err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
	}

	return nil
}

// loadConfig reads the host's own configuration. A missing file yields an
// empty configuration; a malformed one aborts the boot, since later stages
// cannot initialize without it.
func (h *Host) loadConfig() (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(h.root, ConfigFile))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}

		return nil, fmt.Errorf("reading host configuration: %w", err)
	}

	config := map[string]any{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing host configuration: %w", err)
	}

	return config, nil
}

func (h *Host) resolveVersion() string {
	data, err := os.ReadFile(filepath.Join(h.root, VersionFile))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

package check_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"appdoctor/pkg/doctor/check"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRegistry_LoadConfig(t *testing.T) {
	g := NewWithT(t)

	t.Run("yaml source registers checks in document order", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.license
    doc: license file must exist
    kind: path-exists
    params:
      path: LICENSE
  - name: custom.no-core
    doc: no core dumps in the tree
    kind: file-extension
    params:
      extensions: [core]
`)

		registry := check.NewRegistry()
		g.Expect(registry.LoadConfig(path)).To(Succeed())

		descriptors := registry.Descriptors()
		g.Expect(descriptors).To(HaveLen(2))
		g.Expect(descriptors[0].Name).To(Equal("custom.license"))
		g.Expect(descriptors[0].Doc).To(Equal("license file must exist"))
		g.Expect(descriptors[1].Name).To(Equal("custom.no-core"))
	})

	t.Run("toml source registers checks", func(t *testing.T) {
		path := writeConfig(t, "checks.toml", `
[[checks]]
name = "custom.data-dir"
doc = "data directory must be writable"
kind = "path-exists"

[checks.params]
path = "data"
writable = true
`)

		registry := check.NewRegistry()
		g.Expect(registry.LoadConfig(path)).To(Succeed())
		g.Expect(registry.Len()).To(Equal(1))

		resolved, err := registry.Resolve("custom.data-dir")
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(resolved[0].Stage()).To(Equal(check.StagePreInit))
	})

	t.Run("entry overrides an existing registration", func(t *testing.T) {
		registry := check.NewRegistry()
		g.Expect(registry.Register("custom.license", "built-in", factoryFor("custom.license"))).To(Succeed())

		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.license
    doc: overridden
    kind: path-exists
    params:
      path: LICENSE
`)
		g.Expect(registry.LoadConfig(path)).To(Succeed())

		descriptors := registry.Descriptors()
		g.Expect(descriptors).To(HaveLen(1))
		g.Expect(descriptors[0].Doc).To(Equal("overridden"))
	})

	t.Run("missing file", func(t *testing.T) {
		registry := check.NewRegistry()
		err := registry.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		var cfgErr *check.ConfigError
		g.Expect(errors.As(err, &cfgErr)).To(BeTrue())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfig(t, "checks.ini", "checks = none")

		registry := check.NewRegistry()
		err := registry.LoadConfig(path)

		var cfgErr *check.ConfigError
		g.Expect(errors.As(err, &cfgErr)).To(BeTrue())
		g.Expect(err.Error()).To(ContainSubstring("unsupported format"))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", "checks: [\n")

		registry := check.NewRegistry()

		var cfgErr *check.ConfigError
		g.Expect(errors.As(registry.LoadConfig(path), &cfgErr)).To(BeTrue())
	})

	t.Run("unknown kind aborts the whole source", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.fine
    kind: path-exists
    params:
      path: LICENSE
  - name: custom.broken
    kind: quantum-entanglement
`)

		registry := check.NewRegistry()
		err := registry.LoadConfig(path)

		var cfgErr *check.ConfigError
		g.Expect(errors.As(err, &cfgErr)).To(BeTrue())
		g.Expect(err.Error()).To(ContainSubstring("unknown check kind"))
		g.Expect(registry.Len()).To(BeZero())
	})

	t.Run("unknown parameter keys are rejected", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.typo
    kind: path-exists
    params:
      path: LICENSE
      writeable: true
`)

		registry := check.NewRegistry()

		var cfgErr *check.ConfigError
		g.Expect(errors.As(registry.LoadConfig(path), &cfgErr)).To(BeTrue())
	})

	t.Run("missing required parameter", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.nothing
    kind: file-extension
    params: {}
`)

		registry := check.NewRegistry()
		err := registry.LoadConfig(path)
		g.Expect(err).To(HaveOccurred())
		g.Expect(err.Error()).To(ContainSubstring("extensions parameter is required"))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		path := writeConfig(t, "checks.yaml", `
checks:
  - name: ""
    kind: path-exists
    params:
      path: LICENSE
`)

		registry := check.NewRegistry()

		var cfgErr *check.ConfigError
		g.Expect(errors.As(registry.LoadConfig(path), &cfgErr)).To(BeTrue())
	})
}

func TestPathExistsCheck(t *testing.T) {
	g := NewWithT(t)

	resolveConfigured := func(t *testing.T, params string) check.Check {
		t.Helper()

		path := writeConfig(t, "checks.yaml", `
checks:
  - name: custom.path
    kind: path-exists
    params:
`+params)

		registry := check.NewRegistry()
		g.Expect(registry.LoadConfig(path)).To(Succeed())

		resolved, err := registry.Resolve("custom.path")
		g.Expect(err).ToNot(HaveOccurred())

		return resolved[0]
	}

	t.Run("present path succeeds", func(t *testing.T) {
		root := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(root, "LICENSE"), []byte("x"), 0o600)).To(Succeed())

		c := resolveConfigured(t, "      path: LICENSE\n")
		res, err := c.Run(context.Background(), &check.Target{Root: root})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(res.Status).To(Equal(check.StatusSuccess))
	})

	t.Run("missing path errors", func(t *testing.T) {
		c := resolveConfigured(t, "      path: LICENSE\n")
		res, err := c.Run(context.Background(), &check.Target{Root: t.TempDir()})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(res.Status).To(Equal(check.StatusError))
		g.Expect(res.Message).To(ContainSubstring("missing"))
	})

	t.Run("wantAbsent inverts the outcome", func(t *testing.T) {
		root := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(root, "stale.lock"), []byte("x"), 0o600)).To(Succeed())

		c := resolveConfigured(t, "      path: stale.lock\n      wantAbsent: true\n")
		res, err := c.Run(context.Background(), &check.Target{Root: root})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(res.Status).To(Equal(check.StatusWarning))

		g.Expect(os.Remove(filepath.Join(root, "stale.lock"))).To(Succeed())

		res, err = c.Run(context.Background(), &check.Target{Root: root})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(res.Status).To(Equal(check.StatusSuccess))
	})

	t.Run("writable directory succeeds", func(t *testing.T) {
		root := t.TempDir()
		g.Expect(os.Mkdir(filepath.Join(root, "data"), 0o755)).To(Succeed())

		c := resolveConfigured(t, "      path: data\n      writable: true\n")
		res, err := c.Run(context.Background(), &check.Target{Root: root})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(res.Status).To(Equal(check.StatusSuccess))
	})
}

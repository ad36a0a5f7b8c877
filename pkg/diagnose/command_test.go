package diagnose_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"appdoctor/pkg/diagnose"
	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/printer"
	"appdoctor/pkg/util/iostreams"
)

type commandStreams struct {
	out bytes.Buffer
	err bytes.Buffer
}

func newCommand(t *testing.T) (*diagnose.Command, *commandStreams) {
	t.Helper()

	streams := &commandStreams{}
	command := diagnose.NewCommand(iostreams.NewIOStreams(nil, &streams.out, &streams.err))

	return command, streams
}

func TestCommand_Validate(t *testing.T) {
	g := NewWithT(t)

	t.Run("requires names or --all", func(t *testing.T) {
		command, _ := newCommand(t)
		g.Expect(command.Complete()).To(Succeed())

		err := command.Validate()
		g.Expect(err).To(HaveOccurred())
		g.Expect(err.Error()).To(ContainSubstring("--all"))
	})

	t.Run("rejects names combined with --all", func(t *testing.T) {
		command, _ := newCommand(t)
		command.Names = []string{"install.writable"}
		command.All = true
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Validate()).ToNot(Succeed())
	})

	t.Run("rejects a blank field selection", func(t *testing.T) {
		command, _ := newCommand(t)
		command.FieldSpec = " , "

		g.Expect(command.Complete()).ToNot(Succeed())
	})

	t.Run("accepts named checks", func(t *testing.T) {
		command, _ := newCommand(t)
		command.Names = []string{"install.writable"}
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Validate()).To(Succeed())
	})
}

func TestCommand_Run(t *testing.T) {
	g := NewWithT(t)

	newRoot := func(t *testing.T) string {
		t.Helper()

		root := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(root, "VERSION"), []byte("2.5.0\n"), 0o600)).To(Succeed())

		return root
	}

	t.Run("runs all built-ins and renders a table", func(t *testing.T) {
		command, streams := newCommand(t)
		command.All = true
		command.Root = newRoot(t)
		g.Expect(command.Complete()).To(Succeed())
		g.Expect(command.Validate()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		output := streams.out.String()
		g.Expect(output).To(ContainSubstring("NAME"))
		g.Expect(output).To(ContainSubstring("install.writable"))
		g.Expect(output).To(ContainSubstring("install.version"))
		g.Expect(output).To(ContainSubstring("config.debug"))
		g.Expect(output).To(ContainSubstring("files.leftovers"))
		g.Expect(output).To(ContainSubstring("files.logs"))
	})

	t.Run("json output holds the requested field subset in resolution order", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"files.logs", "install.writable"}
		command.Root = newRoot(t)
		command.FieldSpec = "name,status"
		g.Expect(command.OutputFormat.Set("json")).To(Succeed())
		g.Expect(command.Complete()).To(Succeed())
		g.Expect(command.Validate()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		var rows []map[string]any
		g.Expect(json.Unmarshal(streams.out.Bytes(), &rows)).To(Succeed())
		g.Expect(rows).To(HaveLen(2))
		g.Expect(rows[0]).To(Equal(map[string]any{"name": "files.logs", "status": "success"}))
		g.Expect(rows[1]).To(Equal(map[string]any{"name": "install.writable", "status": "success"}))
	})

	t.Run("csv output", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"install.writable"}
		command.Root = newRoot(t)
		g.Expect(command.OutputFormat.Set("csv")).To(Succeed())
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		lines := strings.Split(strings.TrimSpace(streams.out.String()), "\n")
		g.Expect(lines).To(HaveLen(2))
		g.Expect(lines[0]).To(Equal("name,status,message"))
		g.Expect(lines[1]).To(HavePrefix("install.writable,success,"))
	})

	t.Run("unknown check fails before anything runs", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"no.such.check"}
		command.Root = newRoot(t)
		g.Expect(command.Complete()).To(Succeed())

		err := command.Run(context.Background())

		var unknown *check.UnknownCheckError
		g.Expect(errors.As(err, &unknown)).To(BeTrue())
		g.Expect(streams.out.String()).To(BeEmpty())
	})

	t.Run("spotlight prints all clear when everything succeeds", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"install.writable", "files.logs"}
		command.Spotlight = true
		command.Root = newRoot(t)
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		g.Expect(streams.out.String()).To(ContainSubstring("all clear: 2 check(s) succeeded"))
		g.Expect(streams.out.String()).ToNot(ContainSubstring("install.writable"))
	})

	t.Run("spotlight keeps only findings", func(t *testing.T) {
		root := t.TempDir()
		// No VERSION file, so install.version warns.
		command, streams := newCommand(t)
		command.Names = []string{"install.writable", "install.version"}
		command.Spotlight = true
		command.Root = root
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		output := streams.out.String()
		g.Expect(output).To(ContainSubstring("install.version"))
		g.Expect(output).ToNot(ContainSubstring("install.writable"))
		g.Expect(output).ToNot(ContainSubstring("all clear"))
	})

	t.Run("a failing check is a row, not an invocation failure", func(t *testing.T) {
		root := newRoot(t)
		g.Expect(os.WriteFile(filepath.Join(root, "VERSION"), []byte("garbage\n"), 0o600)).To(Succeed())

		command, streams := newCommand(t)
		command.Names = []string{"install.version"}
		command.Root = root
		g.Expect(command.OutputFormat.Set("csv")).To(Succeed())
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())
		g.Expect(streams.out.String()).To(ContainSubstring("install.version,error,"))
	})

	t.Run("missing root aborts the bootstrap after rendering skipped rows", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"install.version"}
		command.Root = filepath.Join(t.TempDir(), "nope")
		g.Expect(command.OutputFormat.Set("csv")).To(Succeed())
		g.Expect(command.Complete()).To(Succeed())

		err := command.Run(context.Background())
		g.Expect(err).To(HaveOccurred())
		g.Expect(err.Error()).To(ContainSubstring("host bootstrap aborted"))
		g.Expect(streams.out.String()).To(ContainSubstring("install.version,skipped,"))
	})

	t.Run("configured checks run alongside built-ins", func(t *testing.T) {
		root := newRoot(t)
		g.Expect(os.WriteFile(filepath.Join(root, "LICENSE"), []byte("MIT"), 0o600)).To(Succeed())

		configPath := filepath.Join(t.TempDir(), "checks.yaml")
		g.Expect(os.WriteFile(configPath, []byte(`
checks:
  - name: custom.license
    doc: license file must exist
    kind: path-exists
    params:
      path: LICENSE
`), 0o600)).To(Succeed())

		command, streams := newCommand(t)
		command.Names = []string{"custom.license", "install.writable"}
		command.ConfigPath = configPath
		command.Root = root
		g.Expect(command.OutputFormat.Set("csv")).To(Succeed())
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())

		lines := strings.Split(strings.TrimSpace(streams.out.String()), "\n")
		g.Expect(lines).To(HaveLen(3))
		g.Expect(lines[1]).To(HavePrefix("custom.license,success,"))
		g.Expect(lines[2]).To(HavePrefix("install.writable,success,"))
	})

	t.Run("bad configuration fails during complete", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "checks.yaml")
		g.Expect(os.WriteFile(configPath, []byte("checks: [\n"), 0o600)).To(Succeed())

		command, _ := newCommand(t)
		command.ConfigPath = configPath

		var cfgErr *check.ConfigError
		g.Expect(errors.As(command.Complete(), &cfgErr)).To(BeTrue())
	})

	t.Run("verbose mode reports progress on the error stream", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"install.writable"}
		command.Verbose = true
		command.Root = newRoot(t)
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())
		g.Expect(streams.err.String()).To(ContainSubstring("resolved 1 check(s)"))
	})

	t.Run("quiet by default", func(t *testing.T) {
		command, streams := newCommand(t)
		command.Names = []string{"install.writable"}
		command.Root = newRoot(t)
		g.Expect(command.Complete()).To(Succeed())

		g.Expect(command.Run(context.Background())).To(Succeed())
		g.Expect(streams.err.String()).To(BeEmpty())
	})
}

func TestRenderRecords_UnsupportedFormat(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	err := diagnose.RenderRecords(&buf, printer.Format("xml"), []string{"name"}, nil)
	g.Expect(err).To(HaveOccurred())
}

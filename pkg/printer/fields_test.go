package printer_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"appdoctor/pkg/printer"
)

type record struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func TestProject(t *testing.T) {
	g := NewWithT(t)

	records := []record{
		{Name: "a", Status: "success", Message: "fine"},
		{Name: "b", Status: "error", Message: "bad"},
	}

	t.Run("keeps only requested fields in record order", func(t *testing.T) {
		projected, err := printer.Project(records, []string{"Name", "Status"})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(projected).To(HaveLen(2))
		g.Expect(projected[0]).To(Equal(map[string]any{"Name": "a", "Status": "success"}))
		g.Expect(projected[1]).To(Equal(map[string]any{"Name": "b", "Status": "error"}))
	})

	t.Run("field names match case-insensitively, keys keep the requested spelling", func(t *testing.T) {
		projected, err := printer.Project(records[:1], []string{"name", "STATUS"})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(projected[0]).To(HaveKeyWithValue("name", "a"))
		g.Expect(projected[0]).To(HaveKeyWithValue("STATUS", "success"))
	})

	t.Run("unknown field fails", func(t *testing.T) {
		_, err := printer.Project(records, []string{"name", "severity"})
		g.Expect(err).To(HaveOccurred())
		g.Expect(err.Error()).To(ContainSubstring(`unknown field "severity"`))
	})

	t.Run("empty input projects to empty output", func(t *testing.T) {
		projected, err := printer.Project([]record{}, []string{"name"})
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(projected).To(BeEmpty())
	})
}

func TestParseFields(t *testing.T) {
	g := NewWithT(t)

	g.Expect(printer.ParseFields("name,status,message")).To(Equal([]string{"name", "status", "message"}))
	g.Expect(printer.ParseFields(" name , status ")).To(Equal([]string{"name", "status"}))
	g.Expect(printer.ParseFields("name,,status")).To(Equal([]string{"name", "status"}))
	g.Expect(printer.ParseFields("")).To(BeNil())
	g.Expect(printer.ParseFields("   ")).To(BeNil())
}

func TestFormat(t *testing.T) {
	g := NewWithT(t)

	t.Run("accepts the supported formats", func(t *testing.T) {
		for _, v := range []string{"table", "json", "yaml", "csv"} {
			var f printer.Format
			g.Expect(f.Set(v)).To(Succeed())
			g.Expect(f.String()).To(Equal(v))
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		var f printer.Format
		g.Expect(f.Set("xml")).ToNot(Succeed())
	})
}

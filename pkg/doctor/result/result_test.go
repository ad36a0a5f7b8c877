package result_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/doctor/result"
)

func TestCollector(t *testing.T) {
	g := NewWithT(t)

	t.Run("records accumulate in arrival order", func(t *testing.T) {
		collector := result.NewCollector()
		collector.Record("a", check.StatusSuccess, "fine")
		collector.Record("b", check.StatusWarning, "meh")
		collector.Record("c", check.StatusError, "bad")

		records := collector.All()
		g.Expect(records).To(HaveLen(3))
		g.Expect(records[0].Name).To(Equal("a"))
		g.Expect(records[1].Name).To(Equal("b"))
		g.Expect(records[2].Name).To(Equal("c"))
	})

	t.Run("duplicate name replaces the earlier record in place", func(t *testing.T) {
		collector := result.NewCollector()
		collector.Record("a", check.StatusSuccess, "first")
		collector.Record("b", check.StatusSuccess, "fine")
		collector.Record("a", check.StatusError, "second")

		records := collector.All()
		g.Expect(records).To(HaveLen(2))
		g.Expect(records[0].Name).To(Equal("a"))
		g.Expect(records[0].Status).To(Equal(string(check.StatusError)))
		g.Expect(records[0].Message).To(Equal("second"))
		g.Expect(records[1].Name).To(Equal("b"))
	})

	t.Run("all returns a copy", func(t *testing.T) {
		collector := result.NewCollector()
		collector.Record("a", check.StatusSuccess, "fine")

		records := collector.All()
		records[0].Name = "mutated"

		g.Expect(collector.All()[0].Name).To(Equal("a"))
	})

	t.Run("filter never mutates the collector", func(t *testing.T) {
		collector := result.NewCollector()
		collector.Record("a", check.StatusSuccess, "fine")
		collector.Record("b", check.StatusError, "bad")

		failed := collector.Filter(func(r result.Record) bool {
			return r.Status != string(check.StatusSuccess)
		})

		g.Expect(failed).To(HaveLen(1))
		g.Expect(failed[0].Name).To(Equal("b"))
		g.Expect(collector.Len()).To(Equal(2))
	})
}

func TestSpotlight(t *testing.T) {
	g := NewWithT(t)

	records := []result.Record{
		{Name: "a", Status: string(check.StatusSuccess)},
		{Name: "b", Status: string(check.StatusWarning)},
		{Name: "c", Status: string(check.StatusError)},
		{Name: "d", Status: string(check.StatusSkipped)},
		{Name: "e", Status: string(check.StatusSuccess)},
	}

	filtered := result.Spotlight(records)
	g.Expect(filtered).To(HaveLen(3))
	g.Expect(filtered[0].Name).To(Equal("b"))
	g.Expect(filtered[1].Name).To(Equal("c"))
	g.Expect(filtered[2].Name).To(Equal("d"))
}

func TestAllClear(t *testing.T) {
	g := NewWithT(t)

	t.Run("empty spotlight over a non-empty run is clear", func(t *testing.T) {
		g.Expect(result.AllClear(nil, 3)).To(BeTrue())
	})

	t.Run("remaining findings are not clear", func(t *testing.T) {
		g.Expect(result.AllClear([]result.Record{{Name: "b"}}, 3)).To(BeFalse())
	})

	t.Run("nothing ran is not clear", func(t *testing.T) {
		g.Expect(result.AllClear(nil, 0)).To(BeFalse())
	})
}

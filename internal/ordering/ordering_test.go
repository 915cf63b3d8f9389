package ordering_test

import (
	"math"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/planboard/internal/ordering"
)

var _ = Describe("Sparse", func() {
	var strategy ordering.Sparse

	BeforeEach(func() {
		strategy = ordering.NewSparse()
	})

	It("uses the base position for an empty column", func() {
		plan := strategy.Insert(nil, 3)
		Expect(plan.Position).To(Equal(ordering.DefaultBase))
		Expect(plan.NeedsRenumber()).To(BeFalse())
	})

	It("places a task between the second and third entries", func() {
		plan := strategy.Insert([]int64{1000, 2000, 3000}, 2)
		Expect(plan.Position).To(Equal(int64(2500)))
		Expect(plan.NeedsRenumber()).To(BeFalse())

		// A, B, task, C
		Expect(slices.IsSorted([]int64{1000, 2000, plan.Position, 3000})).To(BeTrue())
	})

	It("appends one stride after the last entry", func() {
		plan := strategy.Append([]int64{1000, 2000})
		Expect(plan.Position).To(Equal(int64(3000)))
	})

	It("clamps an index past the end", func() {
		plan := strategy.Insert([]int64{1000}, 42)
		Expect(plan.Position).To(Equal(int64(2000)))
	})

	It("clamps a negative index to the start", func() {
		plan := strategy.Insert([]int64{5000}, -1)
		Expect(plan.Position).To(Equal(int64(4000)))
	})

	It("halves the first position when a stride does not fit", func() {
		plan := strategy.Insert([]int64{600, 1600}, 0)
		Expect(plan.Position).To(Equal(int64(300)))
		Expect(plan.NeedsRenumber()).To(BeFalse())
	})

	It("renumbers when neighbours are adjacent", func() {
		plan := strategy.Insert([]int64{1000, 1001, 5000}, 1)
		Expect(plan.NeedsRenumber()).To(BeTrue())
		Expect(plan.Position).To(Equal(int64(2000)))
		Expect(plan.Renumbered).To(Equal([]int64{1000, 3000, 4000}))
	})

	It("renumbers when nothing fits before the first entry", func() {
		plan := strategy.Insert([]int64{1, 2}, 0)
		Expect(plan.NeedsRenumber()).To(BeTrue())
		Expect(plan.Position).To(Equal(int64(1000)))
		Expect(plan.Renumbered).To(Equal([]int64{2000, 3000}))
	})

	It("renumbers duplicated positions", func() {
		plan := strategy.Insert([]int64{1000, 1000}, 1)
		Expect(plan.NeedsRenumber()).To(BeTrue())
		Expect(plan.Renumbered).To(Equal([]int64{1000, 3000}))
		Expect(plan.Position).To(Equal(int64(2000)))
	})

	It("renumbers instead of overflowing at the end", func() {
		plan := strategy.Append([]int64{math.MaxInt64 - 10})
		Expect(plan.NeedsRenumber()).To(BeTrue())
		Expect(plan.Position).To(Equal(int64(2000)))
		Expect(plan.Renumbered).To(Equal([]int64{1000}))
	})

	It("keeps the resulting order strictly increasing after many inserts at one spot", func() {
		column := []int64{1000, 2000}
		for range 40 {
			plan := strategy.Insert(column, 1)
			if plan.NeedsRenumber() {
				column = slices.Clone(plan.Renumbered)
			}
			column = slices.Insert(column, 1, plan.Position)
			Expect(isStrictlyIncreasing(column)).To(BeTrue())
		}
		Expect(column).To(HaveLen(42))
	})
})

func isStrictlyIncreasing(xs []int64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

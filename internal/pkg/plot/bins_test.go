package plot_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/plot"
)

func sequence(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return values
}

var _ = Describe("AutoBins", func() {
	It("should use a single bin when there is no spread", func() {
		Expect(plot.AutoBins(nil)).To(Equal(1))
		Expect(plot.AutoBins([]float64{42})).To(Equal(1))
		Expect(plot.AutoBins([]float64{7, 7, 7})).To(Equal(1))
	})

	It("should use Sturges for evenly spread data", func() {
		Expect(plot.AutoBins([]float64{1, 2, 3, 4})).To(Equal(3))
		Expect(plot.AutoBins(sequence(100))).To(Equal(8))
	})

	It("should fall back to Sturges when the interquartile range is zero", func() {
		Expect(plot.AutoBins([]float64{10, 10, 10, 10, 10, 10, 10, 100})).To(Equal(4))
	})

	It("should use Freedman-Diaconis when it gives narrower bins", func() {
		values := make([]float64, 0, 1001)
		for i := 0; i < 1000; i++ {
			values = append(values, 100+float64(i%10))
		}
		values = append(values, 130)

		Expect(plot.AutoBins(values)).To(Equal(31))
	})

	It("should never use more bins than values when an outlier stretches the range", func() {
		Expect(plot.AutoBins(append(sequence(100), 10000))).To(Equal(101))

		values := []float64{}
		for d := 100.0; d < 150; d++ {
			values = append(values, d)
		}
		values = append(values, 36000)
		Expect(plot.AutoBins(values)).To(Equal(len(values)))
	})
})

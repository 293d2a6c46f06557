package residual_test

import (
	"fmt"
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JonasHarsch/dasslcy/internal/reactor"
	"github.com/JonasHarsch/dasslcy/internal/residual"
)

// Every kernel variant implements the same numerical contract; this suite
// pins them against the reference loop on randomized finite inputs.
var _ = Describe("kernel conformance", func() {
	const relTol = 1e-10

	randomProfile := func(rng *rand.Rand, n int) ([]float64, []float64) {
		c := make([]float64, n)
		dc := make([]float64, n)
		for i := 0; i < n; i++ {
			c[i] = rng.Float64()*4 - 2
			dc[i] = rng.Float64()*2 - 1
		}
		return c, dc
	}

	for _, n := range []int{2, 5, 20, 100} {
		n := n
		Context(fmt.Sprintf("with %d grid nodes", n), func() {
			var (
				p   reactor.Parameters
				rng *rand.Rand
			)

			BeforeEach(func() {
				var err error
				p, err = reactor.NewParameters(1e-2, 1.5, -0.7, 1.0, 0.0, 2.0, n)
				Expect(err).NotTo(HaveOccurred())
				rng = rand.New(rand.NewSource(int64(n)))
			})

			It("agrees across variants", func() {
				ref := residual.NewLoop()
				for trial := 0; trial < 25; trial++ {
					c, dc := randomProfile(rng, n)

					want, status := ref.Evaluate(0, c, dc, p, nil)
					Expect(status).To(Equal(residual.StatusOK))

					for _, name := range residual.Variants() {
						k, err := residual.New(name, n)
						Expect(err).NotTo(HaveOccurred())

						got, status := k.Evaluate(0, c, dc, p, nil)
						Expect(status).To(Equal(residual.StatusOK))
						Expect(got).To(HaveLen(n))
						for i := range want {
							Expect(got[i]).To(BeNumerically("~", want[i], math.Abs(want[i])*relTol+1e-14),
								"variant %s, row %d", name, i)
						}
					}
				}
			})

			It("agrees between buffer strategies", func() {
				for _, name := range residual.Variants() {
					k, err := residual.New(name, n)
					Expect(err).NotTo(HaveOccurred())

					c, dc := randomProfile(rng, n)
					fresh, _ := k.Evaluate(0, c, dc, p, nil)
					buf := make([]float64, n)
					shared, _ := k.Evaluate(0, c, dc, p, buf)
					Expect(shared).To(Equal(fresh), "variant %s", name)
				}
			})

			It("degenerates exactly at zero diffusion", func() {
				pure, err := reactor.NewParameters(0, 1.5, -0.7, 1.0, 0.0, 2.0, n)
				Expect(err).NotTo(HaveOccurred())
				c, _ := randomProfile(rng, n)
				Expect(reactor.InletGhost(c[0], pure.Cf, pure.D, pure.Vz, pure.H)).To(Equal(pure.Cf))
			})
		})
	}
})

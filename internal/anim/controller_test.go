package anim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/faultsim/internal/anim"
)

var _ = Describe("Controller", func() {
	var (
		queue *anim.FrameQueue
		ctrl  *anim.Controller
	)

	BeforeEach(func() {
		queue = anim.NewFrameQueue()
		ctrl = anim.New(anim.Config{MaxDisplacement: 40, DurationMs: 3000}, queue)
	})

	Describe("SetDisplacement", func() {
		DescribeTable("clamps into range and stops playback",
			func(in, want float64) {
				ctrl.Play()
				ctrl.SetDisplacement(in)
				st := ctrl.State()
				Expect(st.Displacement).To(Equal(want))
				Expect(st.IsPlaying).To(BeFalse())
				Expect(queue.Pending()).To(BeZero())
			},
			Entry("inside", 12.5, 12.5),
			Entry("zero", 0.0, 0.0),
			Entry("max", 40.0, 40.0),
			Entry("negative", -3.0, 0.0),
			Entry("above max", 99.0, 40.0),
			Entry("NaN", math.NaN(), 0.0),
		)
	})

	Describe("eased playback", func() {
		It("follows the ease-out cubic curve and stops at the maximum", func() {
			ctrl.Play()
			Expect(ctrl.IsPlaying()).To(BeTrue())

			queue.Fire(0)
			Expect(ctrl.Displacement()).To(Equal(0.0))

			queue.Fire(1500)
			Expect(ctrl.Displacement()).To(Equal(35.0))
			Expect(ctrl.IsPlaying()).To(BeTrue())

			queue.Fire(3000)
			st := ctrl.State()
			Expect(st.Displacement).To(Equal(40.0))
			Expect(st.IsPlaying).To(BeFalse())
			Expect(queue.Pending()).To(BeZero())
		})

		It("is non-decreasing and converges for increasing timestamps", func() {
			ctrl.Play()
			prev := -1.0
			for ts := 0.0; ts <= 3200; ts += 16 {
				queue.Fire(ts)
				d := ctrl.Displacement()
				Expect(d).To(BeNumerically(">=", prev))
				Expect(d).To(BeNumerically("<=", 40))
				prev = d
			}
			Expect(prev).To(Equal(40.0))
			Expect(ctrl.IsPlaying()).To(BeFalse())
		})

		It("captures the start marker lazily on the first tick", func() {
			ctrl.Play()
			Expect(ctrl.State().HasStart).To(BeFalse())
			queue.Fire(500)
			st := ctrl.State()
			Expect(st.HasStart).To(BeTrue())
			Expect(st.StartTime).To(Equal(500.0))
			Expect(st.StartDisplacement).To(Equal(0.0))
		})

		It("restarts from zero when played after completion", func() {
			ctrl.SetDisplacement(40)
			ctrl.Play()
			Expect(ctrl.Displacement()).To(Equal(0.0))
			Expect(ctrl.IsPlaying()).To(BeTrue())
		})

		It("supports hosts that call Tick directly", func() {
			manual := anim.New(anim.Config{MaxDisplacement: 40, DurationMs: 3000}, nil)
			manual.Play()
			manual.Tick(100)
			manual.Tick(1600)
			Expect(manual.Displacement()).To(Equal(35.0))
		})
	})

	Describe("resume from midpoint", func() {
		It("eases from the paused value with a fresh start marker", func() {
			ctrl.Play()
			queue.Fire(0)
			queue.Fire(1500)
			ctrl.Pause()
			Expect(ctrl.Displacement()).To(Equal(35.0))

			ctrl.Play()
			queue.Fire(10000)
			Expect(ctrl.Displacement()).To(Equal(35.0))
			st := ctrl.State()
			Expect(st.StartDisplacement).To(Equal(35.0))
			Expect(st.StartTime).To(Equal(10000.0))

			queue.Fire(11500)
			Expect(ctrl.Displacement()).To(BeNumerically("~", 35+5*0.875, 1e-12))
		})
	})

	Describe("idempotence", func() {
		It("treats a second Pause as a no-op", func() {
			ctrl.Play()
			queue.Fire(0)
			queue.Fire(700)
			ctrl.Pause()
			once := ctrl.State()
			ctrl.Pause()
			Expect(ctrl.State()).To(Equal(once))
		})

		It("treats a second Reset as a no-op", func() {
			ctrl.SetDisplacement(20)
			ctrl.Reset()
			once := ctrl.State()
			ctrl.Reset()
			Expect(ctrl.State()).To(Equal(once))
			Expect(once.Displacement).To(BeZero())
			Expect(once.HasStart).To(BeFalse())
		})
	})

	Describe("cancellation safety", func() {
		It("ignores a frame scheduled before Reset", func() {
			ctrl.Play()
			queue.Fire(0)
			queue.Fire(1000)
			ctrl.Reset()
			Expect(queue.Pending()).To(BeZero())

			Expect(queue.FireCancelled(2000)).To(Equal(1))
			Expect(ctrl.Displacement()).To(BeZero())
			Expect(ctrl.IsPlaying()).To(BeFalse())
		})

		It("ignores a stale frame even after playback restarts", func() {
			ctrl.Play()
			queue.Fire(0)
			ctrl.Reset()
			ctrl.Play()
			queue.FireCancelled(2900)
			Expect(ctrl.Displacement()).To(BeZero())
			Expect(ctrl.State().HasStart).To(BeFalse())

			queue.Fire(5000)
			Expect(ctrl.State().StartTime).To(Equal(5000.0))
		})

		It("ignores a frame scheduled before SetDisplacement", func() {
			ctrl.Play()
			queue.Fire(0)
			ctrl.SetDisplacement(7)
			queue.FireCancelled(2500)
			Expect(ctrl.Displacement()).To(Equal(7.0))
		})

		It("stays inert after Close", func() {
			ctrl.Play()
			ctrl.Close()
			queue.FireCancelled(1000)
			ctrl.Play()
			Expect(ctrl.IsPlaying()).To(BeFalse())
			Expect(queue.Pending()).To(BeZero())
		})
	})
})

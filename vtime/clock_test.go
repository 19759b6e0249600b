package vtime

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Clock", func() {
	var clock *Clock

	BeforeEach(func() {
		clock = NewClock()
	})

	It("should start at zero", func() {
		Expect(clock.ElapsedTime()).To(Equal(VTime(0)))
	})

	It("should accumulate advances", func() {
		clock.Advance(1.5)
		clock.Advance(0)
		clock.Advance(2.5)

		Expect(clock.ElapsedTime()).To(Equal(VTime(4.0)))
	})

	It("should panic on a negative advance", func() {
		Expect(func() {
			clock.Advance(-1)
		}).To(Panic())
	})

	It("should panic on a negative after", func() {
		Expect(func() {
			clock.After(-1)
		}).To(Panic())
	})
})

var _ = Describe("FutureTimePoint", func() {
	var clock *Clock

	BeforeEach(func() {
		clock = NewClock()
	})

	It("should pass once the clock reaches its threshold", func() {
		p := clock.After(2)

		Expect(p.HasPassed()).To(BeFalse())

		clock.Advance(1)
		Expect(p.HasPassed()).To(BeFalse())

		clock.Advance(1)
		Expect(p.HasPassed()).To(BeTrue())

		clock.Advance(10)
		Expect(p.HasPassed()).To(BeTrue())
	})

	It("should pass immediately with a zero delta", func() {
		p := clock.After(0)

		Expect(p.HasPassed()).To(BeTrue())
	})

	It("should order time points on the same clock", func() {
		early := clock.After(1)
		late := clock.After(2)

		before, err := early.Before(late)
		Expect(err).ToNot(HaveOccurred())
		Expect(before).To(BeTrue())

		before, err = late.Before(early)
		Expect(err).ToNot(HaveOccurred())
		Expect(before).To(BeFalse())

		equal, err := early.Equal(clock.After(1))
		Expect(err).ToNot(HaveOccurred())
		Expect(equal).To(BeTrue())
	})

	It("should refuse to compare across clocks", func() {
		otherClock := NewClock()

		_, err := clock.After(1).Before(otherClock.After(1))
		Expect(err).To(MatchError(ErrClockMismatch))

		_, err = clock.After(1).Equal(otherClock.After(1))
		Expect(err).To(MatchError(ErrClockMismatch))
	})

	It("should refuse to compare with other types", func() {
		_, err := clock.After(1).Compare(3.0)
		Expect(err).To(MatchError(ErrNotTimePoint))
	})
})

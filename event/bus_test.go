package event_test

import (
	gomock "go.uber.org/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/comanlab/coman/event"
	"github.com/comanlab/coman/hooking"
)

var _ = Describe("Bus", func() {
	var bus *event.Bus

	BeforeEach(func() {
		bus = event.NewBus()
	})

	Describe("Subscribe", func() {
		It("should call subscribers in registration order, exactly once",
			func() {
				var calls []string

				bus.Subscribe("a", func(event.Event) {
					calls = append(calls, "first")
				})
				bus.Subscribe("a", func(event.Event) {
					calls = append(calls, "second")
				})
				bus.Subscribe("b", func(event.Event) {
					calls = append(calls, "other")
				})

				bus.RaiseEvent("a")
				Expect(calls).To(Equal([]string{"first", "second"}))

				bus.RaiseEvent("a")
				Expect(calls).To(Equal([]string{"first", "second"}))
			})

		It("should pass the raised event to the subscriber", func() {
			var received event.Event

			bus.Subscribe("a", func(e event.Event) {
				received = e
			})

			bus.RaiseEvent("a")
			Expect(received).To(Equal(event.Event("a")))
		})

		It("should not call a subscriber registered during the raise",
			func() {
				count := 0

				bus.Subscribe("a", func(event.Event) {
					count++
					bus.Subscribe("a", func(event.Event) {
						count += 100
					})
				})

				bus.RaiseEvent("a")
				Expect(count).To(Equal(1))

				bus.RaiseEvent("a")
				Expect(count).To(Equal(101))
			})

		It("should support a subscriber re-subscribing itself", func() {
			count := 0

			var handler event.Subscriber
			handler = func(event.Event) {
				count++
				if count < 3 {
					bus.Subscribe("a", handler)
				}
			}
			bus.Subscribe("a", handler)

			bus.RaiseEvent("a")
			bus.RaiseEvent("a")
			bus.RaiseEvent("a")
			bus.RaiseEvent("a")

			Expect(count).To(Equal(3))
		})

		It("should support raising the same event from a subscriber", func() {
			var calls []string

			bus.Subscribe("a", func(event.Event) {
				calls = append(calls, "outer")
				bus.Subscribe("a", func(event.Event) {
					calls = append(calls, "inner")
				})
				bus.RaiseEvent("a")
			})

			bus.RaiseEvent("a")

			Expect(calls).To(Equal([]string{"outer", "inner"}))
		})
	})

	Describe("Multisubscribe", func() {
		It("should fire once on the first matching event", func() {
			count := 0

			bus.Multisubscribe(func(e event.Event) bool {
				return e == "a" || e == "b"
			}, func(event.Event) {
				count++
			})

			bus.RaiseEvent("c")
			Expect(count).To(Equal(0))

			bus.RaiseEvent("a")
			Expect(count).To(Equal(1))

			bus.RaiseEvent("b")
			Expect(count).To(Equal(1))
		})

		It("should retain non-matching multisubscriptions", func() {
			var calls []string

			bus.Multisubscribe(func(e event.Event) bool {
				return e == "x"
			}, func(event.Event) {
				calls = append(calls, "x-watcher")
			})
			bus.Multisubscribe(func(e event.Event) bool {
				return e == "y"
			}, func(event.Event) {
				calls = append(calls, "y-watcher")
			})

			bus.RaiseEvent("y")
			Expect(calls).To(Equal([]string{"y-watcher"}))

			bus.RaiseEvent("x")
			Expect(calls).To(Equal([]string{"y-watcher", "x-watcher"}))
		})

		It("should not evaluate multisubscriptions registered during the "+
			"raise against the current event", func() {
			count := 0

			bus.Multisubscribe(func(e event.Event) bool {
				return e == "a"
			}, func(event.Event) {
				bus.Multisubscribe(func(e event.Event) bool {
					return e == "a"
				}, func(event.Event) {
					count += 100
				})
				count++
			})

			bus.RaiseEvent("a")
			Expect(count).To(Equal(1))

			bus.RaiseEvent("a")
			Expect(count).To(Equal(101))
		})
	})

	Describe("UniqueEvent", func() {
		It("should mint pairwise distinct events", func() {
			e1 := bus.UniqueEvent()
			e2 := bus.UniqueEvent()
			e3 := bus.UniqueEvent()

			Expect(e1).ToNot(Equal(e2))
			Expect(e1).ToNot(Equal(e3))
			Expect(e2).ToNot(Equal(e3))
		})

		It("should mint events distinct from application events", func() {
			e := bus.UniqueEvent()

			Expect(e).ToNot(Equal(event.Event("a")))
			Expect(e).ToNot(Equal(event.Event(0)))
		})

		It("should dispatch unique events like any other event", func() {
			e := bus.UniqueEvent()
			count := 0

			bus.Subscribe(e, func(event.Event) {
				count++
			})

			bus.RaiseEvent(bus.UniqueEvent())
			Expect(count).To(Equal(0))

			bus.RaiseEvent(e)
			Expect(count).To(Equal(1))
		})
	})

	Describe("Hooks", func() {
		var mockCtrl *gomock.Controller

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should invoke hooks around a raise", func() {
			hook := NewMockHook(mockCtrl)
			bus.AcceptHook(hook)

			before := hook.EXPECT().Func(hooking.HookCtx{
				Domain: bus,
				Pos:    event.HookPosBeforeRaise,
				Item:   event.Event("a"),
			})
			hook.EXPECT().Func(hooking.HookCtx{
				Domain: bus,
				Pos:    event.HookPosAfterRaise,
				Item:   event.Event("a"),
			}).After(before)

			bus.RaiseEvent("a")
		})
	})
})

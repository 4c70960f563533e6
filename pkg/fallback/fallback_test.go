package fallback_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/foodhubco/foodbot/pkg/fallback"
)

var _ = Describe("Respond", func() {
	Describe("category coverage", func() {
		It("greets on a greeting", func() {
			Expect(fallback.Respond("hello")).To(ContainSubstring("FoodBot"))
		})

		It("recommends restaurants", func() {
			Expect(fallback.Respond("can you recommend somewhere to eat?")).To(ContainSubstring("Biryani House"))
		})

		It("explains order tracking", func() {
			Expect(fallback.Respond("how do I track my order")).To(ContainSubstring("My Orders"))
		})

		It("explains the ordering process", func() {
			Expect(fallback.Respond("place an order for me")).To(ContainSubstring("Place Order"))
		})

		It("lists payment methods", func() {
			Expect(fallback.Respond("do you take UPI?")).To(ContainSubstring("Cash on Delivery"))
		})

		It("explains cancellation and refunds", func() {
			Expect(fallback.Respond("I want a refund")).To(ContainSubstring("3-5 business days"))
		})

		It("gives delivery times", func() {
			Expect(fallback.Respond("delivery speed?")).To(ContainSubstring("30-45 mins"))
		})

		It("says goodbye", func() {
			Expect(fallback.Respond("thanks, bye!")).To(ContainSubstring("Enjoy your meal"))
		})
	})

	Describe("rule ordering", func() {
		It("prefers tracking over ordering when both match", func() {
			// "how do I track my order" matches both "how"/"order" and "track"
			reply := fallback.Respond("how do I track my order")
			Expect(reply).To(ContainSubstring("My Orders"))
			Expect(reply).NotTo(ContainSubstring("Place Order"))
		})

		It("short-circuits on the first matching rule", func() {
			// Matches greeting and payment; greeting is evaluated first
			Expect(fallback.Respond("hello, payment options?")).To(ContainSubstring("FoodBot"))
		})
	})

	Describe("matching semantics", func() {
		It("matches case-insensitively", func() {
			Expect(fallback.Respond("HELLO")).To(Equal(fallback.Respond("hello")))
		})

		It("matches keywords as substrings", func() {
			Expect(fallback.Respond("reorder please")).To(ContainSubstring("Place Order"))
		})
	})

	Describe("total coverage", func() {
		It("returns the generic default when nothing matches", func() {
			Expect(fallback.Respond("zzz qqq")).To(Equal(fallback.DefaultReply))
		})

		It("never returns empty text", func() {
			inputs := []string{"", " ", "hello", "??", "μεγάλο", "track", "asdfgh"}
			for _, input := range inputs {
				Expect(fallback.Respond(input)).NotTo(BeEmpty())
			}
		})

		It("is deterministic", func() {
			inputs := []string{"hello", "refund", "no rule matches this"}
			for _, input := range inputs {
				Expect(fallback.Respond(input)).To(Equal(fallback.Respond(input)))
			}
		})
	})

	Describe("Rules", func() {
		It("exposes a non-empty ordered table", func() {
			rules := fallback.Rules()
			Expect(rules).NotTo(BeEmpty())
			Expect(rules[0].Name).To(Equal("greeting"))
		})

		It("has keywords and a response on every rule", func() {
			for _, rule := range fallback.Rules() {
				Expect(rule.Keywords).NotTo(BeEmpty())
				Expect(rule.Response).NotTo(BeEmpty())
			}
		})
	})
})

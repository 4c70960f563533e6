// Package fallback provides the deterministic rule-based responder that
// guarantees a reply when the LLM path is unconfigured, unavailable, or
// erroring.
package fallback

import "strings"

// Rule pairs a set of keyword alternatives with a canned response. Rules are
// evaluated in order and the first rule with any keyword appearing as a
// substring of the lower-cased input wins.
type Rule struct {
	Name     string
	Keywords []string
	Response string
}

// DefaultReply is returned when no rule matches. It is a terminal branch:
// Respond never returns empty text.
const DefaultReply = "I can help you with restaurant recommendations, ordering, tracking, payments, or delivery info. What would you like to know? 🍕"

// rules is the static table, initialized once and never mutated, so it is
// safe for unsynchronized concurrent reads. Tracking is checked before the
// ordering rule: "how do I track my order" contains both "how" and "track"
// and must get the tracking reply.
var rules = []Rule{
	{
		Name:     "greeting",
		Keywords: []string{"hi", "hello", "hey", "good"},
		Response: "Hello! 👋 I'm FoodBot, your AI assistant. How can I help you today?",
	},
	{
		Name:     "recommendation",
		Keywords: []string{"restaurant", "best", "recommend", "suggest", "food", "eat"},
		Response: "🍽️ We have amazing restaurants! Top picks: Spice Garden (North Indian ⭐4.5), Dragon Wok (Chinese ⭐4.6), Biryani House (Hyderabadi ⭐4.8). Browse all on our home page!",
	},
	{
		Name:     "tracking",
		Keywords: []string{"track", "where", "status"},
		Response: "🔍 To track: Login → My Orders → View real-time status. Need help with a specific order? Share your Order ID!",
	},
	{
		Name:     "ordering",
		Keywords: []string{"order", "place", "how"},
		Response: "📦 To order: 1) Select a restaurant 2) Add items to cart 3) Click 'Place Order' 4) Pay & enjoy! You'll get a confirmation with Order ID.",
	},
	{
		Name:     "payment",
		Keywords: []string{"pay", "payment", "card", "upi"},
		Response: "💳 We accept: Credit/Debit Cards, UPI (GPay, PhonePe), Net Banking, Cash on Delivery. All transactions are secure!",
	},
	{
		Name:     "cancellation",
		Keywords: []string{"cancel", "refund"},
		Response: "❌ To cancel: My Orders → Select order → Cancel. Orders can only be cancelled before preparation. Refunds take 3-5 business days.",
	},
	{
		Name:     "delivery",
		Keywords: []string{"deliver", "time", "fast"},
		Response: "🚚 Delivery: 30-45 mins average. Free delivery on orders ₹199+. Live tracking available!",
	},
	{
		Name:     "farewell",
		Keywords: []string{"thank", "bye"},
		Response: "You're welcome! 😊 Enjoy your meal! Feel free to ask if you need anything else.",
	},
}

// Rules returns the static table in evaluation order.
func Rules() []Rule {
	return rules
}

// Respond maps raw user text to exactly one reply. Matching is
// case-insensitive and short-circuits on the first matching rule. The same
// input always produces the same output.
func Respond(message string) string {
	lower := strings.ToLower(message)

	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Response
			}
		}
	}

	return DefaultReply
}

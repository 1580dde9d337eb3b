package onboarding

// Conversation prompts. Wording is part of the deployed product surface and
// must stay byte-stable across releases.
const (
	replyAskName   = "Please send your name 👤"
	replyAskedRole = "Thanks! 👤\n\nAre you a:\n1️⃣ Customer (buying items)\n2️⃣ Shopkeeper (selling items)\n\nReply with 1 or 2"

	replyRoleInvalid      = "Please reply with 1 (Customer) or 2 (Shopkeeper)"
	replyCustomerLocation = "Great! 🛍️\n\nPlease share your location 📍\n(Click the attachment button and select 'Location')"
	replyAskShopName      = "Welcome Shopkeeper! 🏪\n\nWhat's your shop name?"

	replyShopNameMissing = "Please send your shop name 🏪"

	replyShopLocation = "Perfect! 📍\n\nNow please share your shop location\n(Click the attachment button and select 'Location')"

	replyLocationInvalid = "📍 Please share your actual location using WhatsApp's location feature"
	replySaveFailed      = "❌ Error saving location. Please try again."
)

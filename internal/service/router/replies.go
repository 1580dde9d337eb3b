package router

const (
	replyServerError      = "❌ Server error processing request"
	replyMediaNotAudio    = "📁 Please send an audio/voice note!"
	replyFallbackGreeting = "👋 Hi! Send me a voice note or text to extract groceries!"

	replyWelcomeText  = "👋 Welcome! What's your name? 👤"
	replyWelcomeAudio = "👋 Welcome! Before I process your order, what's your name? 👤"

	replyShopkeeperInfo = "👋 You're registered as a shopkeeper. Awaiting customer orders! 🛍️"

	replyDownloadFailed       = "❌ Error: Failed to download audio"
	replyTranscriptionFailed  = "❌ Error: Transcription failed"
	replyClassificationFailed = "❌ Error: Classification failed"
)

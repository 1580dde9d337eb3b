package order

import (
	"fmt"
	"strings"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

const (
	thickRule = "========================================" // 40
	thinRule  = "───────────────────────────────────"      // 35

	savedSuffix = "\n\n✅ Order saved!\n📣 Notifying nearby shopkeepers..."
)

// FormatConfirmation renders the customer-facing order summary: the echoed
// utterance, items grouped by category in first-seen order, and the derived
// totals. When the order was stored the saved/notifying footer is appended.
func FormatConfirmation(o *domain.Order, stored bool) string {
	grouped := o.Grouped()

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Got it!\n\n📝 You said:\n\"%s\"\n\n", o.Text)
	b.WriteString(thickRule + "\n")
	b.WriteString("🛍️  ITEMS BY CATEGORY:\n")
	b.WriteString(thickRule + "\n\n")

	for _, category := range grouped.Categories {
		fmt.Fprintf(&b, "%s %s\n", domain.CategoryMarker(category), category)
		b.WriteString(thinRule + "\n")
		for _, item := range grouped.Items[category] {
			fmt.Fprintf(&b, "  • %s (%s)\n", item.Name, item.Quantity)
		}
		b.WriteString("\n")
	}

	b.WriteString(thickRule + "\n")
	fmt.Fprintf(&b, "📊 Total Items: %d\n", o.TotalItems())
	fmt.Fprintf(&b, "📂 Categories: %d", len(grouped.Categories))

	if stored {
		b.WriteString(savedSuffix)
	}
	return b.String()
}

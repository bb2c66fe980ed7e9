package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"vershash/internal/structs"
	"vershash/pkg/utils"
)

// Placeholder in the settings' order link that receives the formatted cart.
const messagePlaceholder = "{message}"

// Message renders the cart as the order text: one line per item, prices
// humanized, total at the end.
func Message(items []structs.CartItem, subtotal float64) string {
	var b strings.Builder
	b.WriteString("Commande:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x%d — %s€\n", item.Name, item.Quantity, utils.FCurrency(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(&b, "Total: %s€", utils.FCurrency(subtotal))
	return b.String()
}

// Link substitutes the order message into the forwarding-link template.
// The message is URL-escaped; a template without the placeholder is
// returned untouched.
func Link(template, message string) string {
	return strings.ReplaceAll(template, messagePlaceholder, url.QueryEscape(message))
}

// Target strips the placeholder (and any query parameter carrying it) from
// the template, leaving the bare destination. Used for the QR rendering of
// the forwarding link.
func Target(template string) string {
	u, err := url.Parse(template)
	if err != nil {
		return strings.ReplaceAll(template, messagePlaceholder, "")
	}

	q := u.Query()
	for key, values := range q {
		for _, v := range values {
			if strings.Contains(v, messagePlaceholder) {
				q.Del(key)
				break
			}
		}
	}
	u.RawQuery = q.Encode()

	return strings.ReplaceAll(u.String(), messagePlaceholder, "")
}

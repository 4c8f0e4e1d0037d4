// Package whatsapp builds the wa.me links the storefront hands
// customers off to. The handoff is one-way; nothing comes back.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
)

const baseURL = "https://wa.me/"

// FormatNaira renders a whole-Naira amount with thousands separators,
// e.g. 10000 -> "₦10,000".
func FormatNaira(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := "₦" + strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Link builds a wa.me URL that opens a chat with the given international
// number and the message pre-filled.
func Link(number, message string) string {
	return baseURL + number + "?text=" + url.QueryEscape(message)
}

// OrderMessage composes the order summary sent after checkout. The draft
// must have both the plan and the contact details filled in.
func OrderMessage(draft *models.CurrentOrder) string {
	return fmt.Sprintf(`Hello Sauki Data Links,

I just made payment and would like to purchase data.

ORDER DETAILS:
Name on Transfer: %s
Product: %s %s (%s)
Price Paid: %s
Phone Number: %s

Thank you!`,
		draft.SenderName,
		strings.ToUpper(string(draft.Network)),
		draft.DataAmount,
		draft.Duration,
		FormatNaira(draft.Price),
		draft.PhoneNumber,
	)
}

// OrderLink is the full handoff URL for a completed checkout.
func OrderLink(contact models.ContactInfo, draft *models.CurrentOrder) string {
	return Link(contact.WhatsApp, OrderMessage(draft))
}

// SubscribeMessage composes the promo-alert opt-in message.
func SubscribeMessage(whatsappNumber string) string {
	return fmt.Sprintf(`Hello Sauki Data Links,
Please add me to your Promo & Offers broadcast list.

My WhatsApp Number: %s
Thank you!`, whatsappNumber)
}

// SubscribeLink is the full opt-in URL for the promo broadcast list.
func SubscribeLink(contact models.ContactInfo, whatsappNumber string) string {
	return Link(contact.WhatsApp, SubscribeMessage(whatsappNumber))
}

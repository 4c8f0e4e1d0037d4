package models

import (
	"errors"
	"strings"
)

// ErrInvalidPhone is returned for any number that fails the Nigerian
// mobile format check. The message is shown to users as-is.
var ErrInvalidPhone = errors.New("Please enter a valid Nigerian phone number")

// nigerianPrefixes covers the 070/080/081/090/091 mobile ranges. A number
// matches if it starts with any entry after cleaning.
var nigerianPrefixes = []string{
	"070", "080", "081", "090", "091",
	"0701", "0702", "0703", "0704", "0705", "0706", "0707", "0708", "0709",
	"0802", "0803", "0804", "0805", "0806", "0807", "0808", "0809",
	"0810", "0811", "0812", "0813", "0814", "0815", "0816", "0817", "0818", "0819",
	"0901", "0902", "0903", "0904", "0905", "0906", "0907", "0908", "0909",
	"0912", "0913", "0915", "0916",
}

// CleanPhone strips every non-digit character.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks a Nigerian mobile number: after cleaning it must be
// exactly 11 digits and start with a recognized prefix. "+234..." forms are
// rejected; the cleaned string is 13 digits and carries no local prefix.
func ValidatePhone(phone string) error {
	cleaned := CleanPhone(phone)
	if len(cleaned) != 11 {
		return ErrInvalidPhone
	}
	for _, prefix := range nigerianPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			return nil
		}
	}
	return ErrInvalidPhone
}

// ValidateOrderForm checks the contact-details step of checkout.
func ValidateOrderForm(senderName, phoneNumber string) map[string]string {
	errs := make(map[string]string)
	if len(strings.TrimSpace(senderName)) < 2 {
		errs["senderName"] = "Name must be at least 2 characters"
	}
	if err := ValidatePhone(phoneNumber); err != nil {
		errs["phoneNumber"] = err.Error()
	}
	return errs
}

// ValidateLogin checks the admin login form for empty fields only;
// credential matching happens in the store.
func ValidateLogin(username, password string) map[string]string {
	errs := make(map[string]string)
	if username == "" {
		errs["username"] = "Username is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidatePlanForm checks admin plan create/edit input.
func ValidatePlanForm(network Network, dataAmount, duration string, price int) map[string]string {
	errs := make(map[string]string)
	if !network.Valid() {
		errs["network"] = "Invalid network selected."
	}
	if dataAmount == "" {
		errs["dataAmount"] = "Data amount is required."
	}
	if duration == "" {
		errs["duration"] = "Duration is required."
	}
	if price < 0 {
		errs["price"] = "Price must not be negative."
	}
	return errs
}

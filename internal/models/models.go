package models

// Network identifies one of the mobile carriers we resell data for.
type Network string

const (
	NetworkMTN    Network = "mtn"
	NetworkAirtel Network = "airtel"
	NetworkGlo    Network = "glo"
)

// Networks lists every supported carrier in display order.
var Networks = []Network{NetworkMTN, NetworkAirtel, NetworkGlo}

func (n Network) Valid() bool {
	switch n {
	case NetworkMTN, NetworkAirtel, NetworkGlo:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DataPlan is one purchasable bundle in the catalog. Price is in whole
// Naira; DataAmount and Duration are display strings ("5GB", "30 days").
type DataPlan struct {
	ID         string  `json:"id"`
	Network    Network `json:"network"`
	DataAmount string  `json:"dataAmount"`
	Duration   string  `json:"duration"`
	Price      int     `json:"price"`
	Enabled    bool    `json:"enabled"`
}

// Promo is a promotional banner. At most one promo is live at a time;
// the store enforces that when a promo is toggled live.
type Promo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsLive      bool   `json:"isLive"`
	CreatedAt   string `json:"createdAt"`
}

// AdminUser is a dashboard account. Passwords are stored and compared as
// plain text to match the existing login contract; see README for the
// security note.
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Order is the persisted record of a completed checkout. Always created
// pending; CreatedAt is an RFC 3339 timestamp string.
type Order struct {
	ID          string      `json:"id"`
	SenderName  string      `json:"senderName"`
	PhoneNumber string      `json:"phoneNumber"`
	ProductName string      `json:"productName"`
	Price       int         `json:"price"`
	Network     Network     `json:"network"`
	CreatedAt   string      `json:"createdAt"`
	Status      OrderStatus `json:"status"`
}

// CurrentOrder is the single in-progress checkout draft. Plan fields are
// set when a plan is picked; SenderName and PhoneNumber arrive later from
// the details form.
type CurrentOrder struct {
	Network     Network `json:"network"`
	DataAmount  string  `json:"dataAmount"`
	Price       int     `json:"price"`
	Duration    string  `json:"duration"`
	SenderName  string  `json:"senderName,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
}

// HasPlan reports whether a plan has been selected into the draft.
func (c *CurrentOrder) HasPlan() bool {
	return c != nil && c.Network.Valid() && c.DataAmount != ""
}

// HasDetails reports whether the contact step has been completed.
func (c *CurrentOrder) HasDetails() bool {
	return c.HasPlan() && c.SenderName != "" && c.PhoneNumber != ""
}

// PaymentDetails is the bank account shown on the manual-transfer page.
type PaymentDetails struct {
	AccountNumber string
	BankName      string
	AccountName   string
}

// ContactInfo holds the business contact identifiers. WhatsApp is the
// international-format number used for wa.me handoff links.
type ContactInfo struct {
	Phone     string
	WhatsApp  string
	Email     string
	Twitter   string
	Facebook  string
	Instagram string
}

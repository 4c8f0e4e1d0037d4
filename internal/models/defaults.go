package models

// DefaultDataPlans is the catalog written on first run when no plans
// have ever been saved.
var DefaultDataPlans = []DataPlan{
	// MTN
	{ID: "mtn-1gb", Network: NetworkMTN, DataAmount: "1GB", Duration: "30 days", Price: 500, Enabled: true},
	{ID: "mtn-2gb", Network: NetworkMTN, DataAmount: "2GB", Duration: "30 days", Price: 1000, Enabled: true},
	{ID: "mtn-5gb", Network: NetworkMTN, DataAmount: "5GB", Duration: "30 days", Price: 2000, Enabled: true},
	{ID: "mtn-10gb", Network: NetworkMTN, DataAmount: "10GB", Duration: "30 days", Price: 4000, Enabled: true},

	// Airtel
	{ID: "airtel-10gb", Network: NetworkAirtel, DataAmount: "10GB", Duration: "30 days", Price: 4000, Enabled: true},
	{ID: "airtel-25gb", Network: NetworkAirtel, DataAmount: "25GB", Duration: "30 days", Price: 10000, Enabled: true},

	// Glo
	{ID: "glo-1gb", Network: NetworkGlo, DataAmount: "1GB", Duration: "30 days", Price: 500, Enabled: true},
	{ID: "glo-5gb", Network: NetworkGlo, DataAmount: "5GB", Duration: "30 days", Price: 2500, Enabled: true},
	{ID: "glo-10gb", Network: NetworkGlo, DataAmount: "10GB", Duration: "30 days", Price: 4000, Enabled: true},
}

// DefaultAdmin is the account seeded when the admin collection is empty.
var DefaultAdmin = AdminUser{
	ID:       "admin-1",
	Username: "AbdallahSauki",
	Password: "AAUNangere@2003",
}

// Payment holds the bank-transfer destination shown during checkout.
var Payment = PaymentDetails{
	AccountNumber: "8164135836",
	BankName:      "Opay / Sterling Bank",
	AccountName:   "Abdullahi Adam Usman",
}

// Contact is how customers reach the business.
var Contact = ContactInfo{
	Phone:     "08164135836",
	WhatsApp:  "2348164135836",
	Email:     "saukidatalinks@gmail.com",
	Twitter:   "@SaukiDataLinks",
	Facebook:  "@SaukiDataLinks",
	Instagram: "@SaukiDataLinks",
}

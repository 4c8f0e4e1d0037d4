package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"mtn number", "08012345678", true},
		{"airtel 090 number", "09023456789", true},
		{"070 range", "07012345678", true},
		{"four digit prefix", "09161234567", true},
		{"spaced and dashed input is cleaned", "0801-234-5678", true},
		{"no recognized prefix", "12345678901", false},
		{"too short", "0801234567", false},
		{"too long", "080123456789", false},
		{"international format cleans to 13 digits", "+2348012345678", false},
		{"empty", "", false},
		{"letters only", "not a number", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPhone)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "2348012345678", CleanPhone("+234 801 234 5678"))
	assert.Equal(t, "08012345678", CleanPhone("0801-234-5678"))
	assert.Equal(t, "", CleanPhone("abc"))
}

func TestValidateOrderForm(t *testing.T) {
	errs := ValidateOrderForm("Abdul Usman", "08012345678")
	assert.Empty(t, errs)

	errs = ValidateOrderForm("A", "08012345678")
	assert.Contains(t, errs, "senderName")

	errs = ValidateOrderForm("Abdul Usman", "12345678901")
	assert.Contains(t, errs, "phoneNumber")
}

func TestNetworkValid(t *testing.T) {
	assert.True(t, NetworkMTN.Valid())
	assert.True(t, NetworkAirtel.Valid())
	assert.True(t, NetworkGlo.Valid())
	assert.False(t, Network("9mobile").Valid())
	assert.False(t, Network("").Valid())
}

func TestCurrentOrderSteps(t *testing.T) {
	var none *CurrentOrder
	assert.False(t, none.HasPlan())
	assert.False(t, none.HasDetails())

	draft := &CurrentOrder{Network: NetworkMTN, DataAmount: "5GB", Price: 2000, Duration: "30 days"}
	assert.True(t, draft.HasPlan())
	assert.False(t, draft.HasDetails())

	draft.SenderName = "Abdul Usman"
	draft.PhoneNumber = "08012345678"
	assert.True(t, draft.HasDetails())
}

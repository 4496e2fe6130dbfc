package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{BankTransfer, PayPal, Crypto, Check} {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, PaymentMethod("wire").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPayoutStatusIs(t *testing.T) {
	assert.True(t, StatusApproved.Is("approved"))
	assert.True(t, StatusApproved.Is("APPROVED"))
	assert.True(t, PayoutStatus("Pending").Is("pending"))
	assert.False(t, StatusApproved.Is("rejected"))
}

func TestKYCUpdateEmpty(t *testing.T) {
	assert.True(t, KYCUpdate{}.Empty())
	assert.False(t, KYCUpdate{BankAccount: BankAccount{BankName: "SBI"}}.Empty())
	assert.False(t, KYCUpdate{KYCInformation: KYCInformation{PANNumber: "ABCDE1234F"}}.Empty())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAuthor))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("editor"))
}

func TestOrderPaymentMethodValid(t *testing.T) {
	assert.True(t, PayFromWallet.Valid())
	assert.True(t, PayRazorpay.Valid())
	assert.False(t, OrderPaymentMethod("cash").Valid())
	assert.False(t, OrderPaymentMethod("").Valid())
}

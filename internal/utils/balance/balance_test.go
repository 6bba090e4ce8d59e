package balance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/utils/balance"
)

func TestSignedRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		magnitude string
		sign      domain.BalanceSign
	}{
		{"credit magnitude", "1500.50", domain.Credit},
		{"debit magnitude", "320", domain.Debit},
		{"zero credit", "0", domain.Credit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mag := decimal.RequireFromString(tc.magnitude)
			signed := balance.ToSigned(mag, tc.sign)
			gotMag, gotSign := balance.FromSigned(signed)
			assert.True(t, mag.Equal(gotMag), "magnitude mismatch: %s vs %s", mag, gotMag)
			if mag.IsZero() {
				// Zero always normalizes to the credit side.
				assert.Equal(t, domain.Credit, gotSign)
			} else {
				assert.Equal(t, tc.sign, gotSign)
			}
		})
	}
}

func TestToSignedNegatesDebit(t *testing.T) {
	signed := balance.ToSigned(decimal.NewFromInt(250), domain.Debit)
	assert.True(t, signed.Equal(decimal.NewFromInt(-250)))

	signed = balance.ToSigned(decimal.NewFromInt(250), domain.Credit)
	assert.True(t, signed.Equal(decimal.NewFromInt(250)))
}

func TestPaymentMovement(t *testing.T) {
	amount := decimal.NewFromInt(200)

	debit, credit, err := balance.PaymentMovement(domain.Supplier, amount)
	require.NoError(t, err)
	assert.True(t, debit.Equal(amount))
	assert.True(t, credit.IsZero())

	debit, credit, err = balance.PaymentMovement(domain.Client, amount)
	require.NoError(t, err)
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(amount))

	_, _, err = balance.PaymentMovement(domain.AccountKind("OTHER"), amount)
	assert.Error(t, err)
}

func TestInvoiceMovement(t *testing.T) {
	amount := decimal.NewFromInt(75)

	debit, credit, err := balance.InvoiceMovement(domain.Supplier, amount)
	require.NoError(t, err)
	assert.True(t, debit.IsZero())
	assert.True(t, credit.Equal(amount))

	debit, credit, err = balance.InvoiceMovement(domain.Client, amount)
	require.NoError(t, err)
	assert.True(t, debit.Equal(amount))
	assert.True(t, credit.IsZero())
}

func TestApplyMovementSupplierPayment(t *testing.T) {
	// Supplier owed 500; paying 200 leaves 300 owed.
	current := decimal.NewFromInt(500)
	debit, credit, err := balance.PaymentMovement(domain.Supplier, decimal.NewFromInt(200))
	require.NoError(t, err)

	next := balance.ApplyMovement(current, debit, credit)
	assert.True(t, next.Equal(decimal.NewFromInt(300)))
}

func TestApplyMovementClientPaymentReducesDebt(t *testing.T) {
	// Client owes 400 (signed -400); a 150 payment moves it to -250.
	current := decimal.NewFromInt(-400)
	debit, credit, err := balance.PaymentMovement(domain.Client, decimal.NewFromInt(150))
	require.NoError(t, err)

	next := balance.ApplyMovement(current, debit, credit)
	assert.True(t, next.Equal(decimal.NewFromInt(-250)))
}

func TestOpeningMovementLandsOnSignedBalance(t *testing.T) {
	mag := decimal.NewFromInt(1000)

	debit, credit := balance.OpeningMovement(mag, domain.Credit)
	got := balance.ApplyMovement(decimal.Zero, debit, credit)
	assert.True(t, got.Equal(balance.ToSigned(mag, domain.Credit)))

	debit, credit = balance.OpeningMovement(mag, domain.Debit)
	got = balance.ApplyMovement(decimal.Zero, debit, credit)
	assert.True(t, got.Equal(balance.ToSigned(mag, domain.Debit)))
}

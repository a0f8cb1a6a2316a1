package liqpay

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New("sandbox_public", "sandbox_private")
	require.NoError(t, err)
	return client
}

func TestNew_RequiresBothKeys(t *testing.T) {
	_, err := New("", "private")
	require.Error(t, err)
	_, err = New("public", "")
	require.Error(t, err)
}

func TestVerify_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	data := base64.StdEncoding.EncodeToString([]byte(`{"status":"success"}`))

	assert.True(t, client.Verify(data, client.Sign(data)))
}

func TestVerify_RejectsTampering(t *testing.T) {
	client := newTestClient(t)
	data := base64.StdEncoding.EncodeToString([]byte(`{"status":"success"}`))
	signature := client.Sign(data)

	// Flip one byte of the payload.
	tampered := []byte(data)
	tampered[0] ^= 1
	assert.False(t, client.Verify(string(tampered), signature))

	// Flip one byte of the signature.
	badSig := []byte(signature)
	badSig[0] ^= 1
	assert.False(t, client.Verify(data, string(badSig)))

	// A signature from another merchant's key does not verify.
	other, err := New("sandbox_public", "someone_else")
	require.NoError(t, err)
	assert.False(t, client.Verify(data, other.Sign(data)))
}

func TestVerify_EmptyInputs(t *testing.T) {
	client := newTestClient(t)
	data := base64.StdEncoding.EncodeToString([]byte(`{}`))

	assert.False(t, client.Verify("", client.Sign(data)))
	assert.False(t, client.Verify(data, ""))
	assert.False(t, client.Verify("", ""))
}

func TestCheckout_EncodesSignedPayload(t *testing.T) {
	client := newTestClient(t)

	checkout, err := client.Checkout(CheckoutParams{
		Action:      ActionPay,
		Amount:      150.5,
		Currency:    "UAH",
		Description: "project support",
		OrderID:     "abc:def",
		Language:    "uk",
		ResultURL:   "https://example.org/thanks",
		ServerURL:   "https://example.org/api/v1/transactions/liqpay-confirmation",
	})
	require.NoError(t, err)
	require.True(t, client.Verify(checkout.Data, checkout.Signature))

	raw, err := base64.StdEncoding.DecodeString(checkout.Data)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "3", payload["version"])
	assert.Equal(t, "sandbox_public", payload["public_key"])
	assert.Equal(t, "pay", payload["action"])
	assert.Equal(t, "150.5", payload["amount"])
	assert.Equal(t, "abc:def", payload["order_id"])
	assert.NotContains(t, payload, "subscribe")
	assert.NotContains(t, payload, "subscribe_periodicity")
}

func TestCheckout_SubscribeCarriesSchedule(t *testing.T) {
	client := newTestClient(t)

	checkout, err := client.Checkout(CheckoutParams{
		Action:               ActionSubscribe,
		Amount:               100,
		Currency:             "UAH",
		Description:          "monthly support",
		OrderID:              "abc",
		SubscribeDateStart:   "2024-03-01 00:00:00",
		SubscribePeriodicity: "month",
	})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(checkout.Data)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "subscribe", payload["action"])
	assert.Equal(t, "1", payload["subscribe"])
	assert.Equal(t, "100", payload["amount"])
	assert.Equal(t, "2024-03-01 00:00:00", payload["subscribe_date_start"])
	assert.Equal(t, "month", payload["subscribe_periodicity"])
}

func TestDecodeCallback(t *testing.T) {
	raw := `{"action":"pay","status":"success","amount":500,"amount_debit":507.5,` +
		`"currency":"UAH","order_id":"abc:def","payment_id":2165243461,` +
		`"sender_first_name":"Olha","sender_phone":"+380501112233"}`
	cb, err := DecodeCallback(base64.StdEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)

	assert.Equal(t, "pay", cb.Action)
	assert.Equal(t, "success", cb.Status)
	assert.Equal(t, 500.0, cb.Amount)
	assert.Equal(t, 507.5, cb.AmountDebit)
	assert.Equal(t, "abc:def", cb.OrderID)
	assert.Equal(t, "2165243461", cb.PaymentID.String())
	assert.Equal(t, "Olha", cb.SenderFirstName)
}

func TestDecodeCallback_Malformed(t *testing.T) {
	_, err := DecodeCallback("%%% not base64 %%%")
	require.Error(t, err)

	_, err = DecodeCallback(base64.StdEncoding.EncodeToString([]byte("{truncated")))
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeAccepted, Outcome("success"))
	assert.Equal(t, OutcomeAccepted, Outcome("wait_accept"))
	assert.Equal(t, OutcomeAccepted, Outcome("subscribed"))
	assert.Equal(t, OutcomePending, Outcome("sandbox"))
	assert.Equal(t, OutcomePending, Outcome("processing"))
	assert.Equal(t, OutcomeRejected, Outcome("failure"))
	assert.Equal(t, OutcomeRejected, Outcome("error"))
	assert.Equal(t, OutcomeRejected, Outcome(""))
}

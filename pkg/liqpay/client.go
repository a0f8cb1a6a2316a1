// Package liqpay implements the subset of the LiqPay checkout protocol the
// backend needs: request signing, callback verification/decoding and the
// hosted-checkout payload ("cnb" form data the frontend redirects with).
package liqpay

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

const apiVersion = "3"

// Checkout actions supported by the provider.
const (
	ActionPay       = "pay"
	ActionSubscribe = "subscribe"
	ActionRegular   = "regular"
	ActionPayDonate = "paydonate"
)

type Client struct {
	publicKey  string
	privateKey string
}

func New(publicKey, privateKey string) (*Client, error) {
	if publicKey == "" || privateKey == "" {
		return nil, errors.New("missing liqpay credentials")
	}
	return &Client{publicKey: publicKey, privateKey: privateKey}, nil
}

// Sign computes the provider signature for an already base64-encoded payload:
// base64(sha1(private_key + data + private_key)).
func (c *Client) Sign(data string) string {
	h := sha1.Sum([]byte(c.privateKey + data + c.privateKey))
	return base64.StdEncoding.EncodeToString(h[:])
}

// Verify reports whether signature matches data under the client's private
// key. Missing data or signature is a verification failure, not an error;
// a forged payload and an absent one are indistinguishable to callers.
func (c *Client) Verify(data, signature string) bool {
	if data == "" || signature == "" {
		return false
	}
	expected := c.Sign(data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// CheckoutParams carries the fields that vary per checkout request. Zero-value
// optional fields are omitted from the encoded payload.
type CheckoutParams struct {
	Action      string
	Amount      float64
	Currency    string
	Description string
	OrderID     string
	Language    string
	ResultURL   string
	ServerURL   string

	// Subscription schedule, only sent when Action is subscribe.
	SubscribeDateStart   string
	SubscribePeriodicity string
}

// Checkout is the signed payload pair the client redirects the donor with.
type Checkout struct {
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

type checkoutPayload struct {
	Version              string `json:"version"`
	PublicKey            string `json:"public_key"`
	Action               string `json:"action"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	Description          string `json:"description"`
	OrderID              string `json:"order_id"`
	Language             string `json:"language,omitempty"`
	ResultURL            string `json:"result_url,omitempty"`
	ServerURL            string `json:"server_url,omitempty"`
	Subscribe            string `json:"subscribe,omitempty"`
	SubscribeDateStart   string `json:"subscribe_date_start,omitempty"`
	SubscribePeriodicity string `json:"subscribe_periodicity,omitempty"`
}

// Checkout builds the signed redirect payload for a checkout request.
func (c *Client) Checkout(params CheckoutParams) (Checkout, error) {
	payload := checkoutPayload{
		Version:              apiVersion,
		PublicKey:            c.publicKey,
		Action:               params.Action,
		Amount:               fmt.Sprintf("%g", params.Amount),
		Currency:             params.Currency,
		Description:          params.Description,
		OrderID:              params.OrderID,
		Language:             params.Language,
		ResultURL:            params.ResultURL,
		ServerURL:            params.ServerURL,
		SubscribeDateStart:   params.SubscribeDateStart,
		SubscribePeriodicity: params.SubscribePeriodicity,
	}
	if params.Action == ActionSubscribe {
		payload.Subscribe = "1"
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Checkout{}, fmt.Errorf("encode checkout payload: %w", err)
	}

	data := base64.StdEncoding.EncodeToString(raw)
	return Checkout{Data: data, Signature: c.Sign(data)}, nil
}

// Callback is the decoded server-to-server payment result. PaymentID is kept
// as json.Number because the provider sends it as a bare integer.
type Callback struct {
	Action          string      `json:"action"`
	Status          string      `json:"status"`
	Amount          float64     `json:"amount"`
	AmountDebit     float64     `json:"amount_debit"`
	Currency        string      `json:"currency"`
	OrderID         string      `json:"order_id"`
	PaymentID       json.Number `json:"payment_id"`
	SenderFirstName string      `json:"sender_first_name"`
	SenderLastName  string      `json:"sender_last_name"`
	SenderPhone     string      `json:"sender_phone"`
}

// DecodeCallback parses the base64-encoded JSON body of a provider callback.
// The payload must already have passed Verify; decoding performs no
// authenticity check of its own.
func DecodeCallback(data string) (*Callback, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode callback data: %w", err)
	}

	var cb Callback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("parse callback data: %w", err)
	}
	return &cb, nil
}

// CallbackOutcome is the internal classification of the provider status
// vocabulary. Only accepted callbacks may produce a transaction.
type CallbackOutcome int

const (
	OutcomeRejected CallbackOutcome = iota
	OutcomeAccepted
	OutcomePending
)

// statusOutcomes is the single mapping table from provider statuses to
// internal outcomes. Statuses absent from the table are rejections.
var statusOutcomes = map[string]CallbackOutcome{
	"success":     OutcomeAccepted,
	"wait_accept": OutcomeAccepted,
	"subscribed":  OutcomeAccepted,
	"sandbox":     OutcomePending,
	"processing":  OutcomePending,
}

func Outcome(status string) CallbackOutcome {
	if outcome, ok := statusOutcomes[status]; ok {
		return outcome
	}
	return OutcomeRejected
}

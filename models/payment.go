package models

import "encoding/json"

// GatewayPayload is the payment request submitted to the gateway,
// base64-encoded inside PayRequest. Amount is in paise.
type GatewayPayload struct {
	MerchantID            string            `json:"merchantId"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	MerchantUserID        string            `json:"merchantUserId"`
	Amount                int64             `json:"amount"`
	RedirectURL           string            `json:"redirectUrl"`
	RedirectMode          string            `json:"redirectMode"`
	CallbackURL           string            `json:"callbackUrl"`
	MobileNumber          string            `json:"mobileNumber"`
	PaymentInstrument     PaymentInstrument `json:"paymentInstrument"`
}

type PaymentInstrument struct {
	Type string `json:"type"`
}

// PayRequest is the wire body of POST <host>/pg/v1/pay.
type PayRequest struct {
	Request string `json:"request"`
}

// PayResponse mirrors the nested gateway response carrying the URL the
// payer's browser must be redirected to.
type PayResponse struct {
	Success bool `json:"success"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

// CallbackOutcome is the decoded content of the gateway's asynchronous
// notification. Raw keeps the full payload for storage; fields beyond
// the transaction id and outcome code are gateway-defined and opaque.
type CallbackOutcome struct {
	MerchantTransactionID string `json:"merchantTransactionId"`
	Code                  string `json:"code"`

	Raw json.RawMessage `json:"-"`
}

package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	netHttp "net/http"
	"net/http/httptest"
	"testing"

	"registration-module/config"
	apphttp "registration-module/http"
	"registration-module/http/handlers"
	"registration-module/models"
	"registration-module/services"
	"registration-module/store"

	"github.com/stretchr/testify/assert"
)

func newTestApp(t *testing.T) (*netHttp.ServeMux, *store.Memory) {
	t.Helper()

	config.AppConfig = config.Config{
		MerchantID: "MERCHANT1",
		SaltKey:    "test-salt-key",
		SaltIndex:  1,
		GatewayURL: "https://gateway.example",
		AppBaseURL: "http://localhost:8080",
	}

	st := store.NewMemory()
	h := &handlers.Handler{
		Store:     st,
		Payments:  services.NewPaymentService(),
		Callbacks: services.NewCallbackService(st, nil),
		Status:    services.NewStatusService(st),
	}

	mux := netHttp.NewServeMux()
	apphttp.SetupRoutes(mux, h)
	return mux, st
}

func doJSON(mux *netHttp.ServeMux, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func signedCallbackBody(txnID, code string) (map[string]string, map[string]string) {
	raw := fmt.Sprintf(`{"merchantTransactionId":%q,"code":%q}`, txnID, code)
	payload := base64.StdEncoding.EncodeToString([]byte(raw))
	sig := services.Sign(payload, "", config.AppConfig.SaltKey, config.AppConfig.SaltIndex)
	return map[string]string{"response": payload}, map[string]string{"x-verify": sig}
}

func TestSubmitForm(t *testing.T) {
	mux, st := newTestApp(t)
	a := assert.New(t)

	tests := []struct {
		description  string
		payload      map[string]interface{}
		expectedCode int
	}{
		{
			description: "successful submission",
			payload: map[string]interface{}{
				"name": "A", "email": "a@x.com", "branch": "CSE",
				"mobile": "9876543210", "hobbies": "chess", "game": "futsal",
				"participate": true, "txnId": "T1",
			},
			expectedCode: 200,
		},
		{
			description:  "missing name",
			payload:      map[string]interface{}{"email": "a@x.com", "txnId": "T2"},
			expectedCode: 400,
		},
		{
			description:  "invalid email",
			payload:      map[string]interface{}{"name": "A", "email": "not-an-email", "txnId": "T3"},
			expectedCode: 400,
		},
		{
			description:  "missing txn id",
			payload:      map[string]interface{}{"name": "A", "email": "a@x.com"},
			expectedCode: 400,
		},
	}

	for _, test := range tests {
		rec := doJSON(mux, "POST", "/submit-form", test.payload, nil)
		a.Equal(test.expectedCode, rec.Code, test.description)
	}

	sub, err := st.FindByTxnID("T1")
	a.NoError(err)
	a.Equal(models.PaymentStatusPending, sub.PaymentStatus)
}

func TestSubmitFormWrongMethod(t *testing.T) {
	mux, _ := newTestApp(t)

	rec := doJSON(mux, "GET", "/submit-form", nil, nil)
	assert.Equal(t, 405, rec.Code)
}

func TestPreflight(t *testing.T) {
	mux, _ := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/pay", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, 204, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPaymentEndToEnd(t *testing.T) {
	a := assert.New(t)

	gateway := httptest.NewServer(netHttp.HandlerFunc(func(w netHttp.ResponseWriter, r *netHttp.Request) {
		w.Write([]byte(`{"success":true,"data":{"instrumentResponse":{"redirectInfo":{"url":"https://gateway.example/pay/abc"}}}}`))
	}))
	defer gateway.Close()

	mux, st := newTestApp(t)
	config.AppConfig.GatewayURL = gateway.URL

	// Submit a registration
	rec := doJSON(mux, "POST", "/submit-form", map[string]interface{}{
		"name": "A", "email": "a@x.com", "txnId": "T1",
	}, nil)
	a.Equal(200, rec.Code)

	// Initiate payment
	rec = doJSON(mux, "POST", "/pay", map[string]interface{}{
		"amount": 250, "mobileNumber": "9876543210", "merchantTransactionId": "T1",
	}, nil)
	a.Equal(200, rec.Code)

	var payBody struct {
		Success    bool   `json:"success"`
		PaymentURL string `json:"paymentUrl"`
	}
	a.NoError(json.Unmarshal(rec.Body.Bytes(), &payBody))
	a.True(payBody.Success)
	a.Equal("https://gateway.example/pay/abc", payBody.PaymentURL)

	// Correctly signed success callback
	body, headers := signedCallbackBody("T1", "PAYMENT_SUCCESS")
	rec = doJSON(mux, "POST", "/callback", body, headers)
	a.Equal(200, rec.Code)

	sub, err := st.FindByTxnID("T1")
	a.NoError(err)
	a.Equal(models.PaymentStatusSuccess, sub.PaymentStatus)

	// Status query reflects the outcome
	rec = doJSON(mux, "GET", "/check-status/T1", nil, nil)
	a.Equal(200, rec.Code)

	var statusBody struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
	}
	a.NoError(json.Unmarshal(rec.Body.Bytes(), &statusBody))
	a.True(statusBody.Success)
	a.Equal("SUCCESS", statusBody.Status)
}

func TestPayValidation(t *testing.T) {
	mux, _ := newTestApp(t)
	a := assert.New(t)

	tests := []struct {
		description  string
		payload      map[string]interface{}
		expectedCode int
	}{
		{
			description:  "missing txn id",
			payload:      map[string]interface{}{"amount": 250, "mobileNumber": "9876543210"},
			expectedCode: 400,
		},
		{
			description:  "non-positive amount",
			payload:      map[string]interface{}{"amount": 0, "mobileNumber": "9876543210", "merchantTransactionId": "T1"},
			expectedCode: 400,
		},
	}

	for _, test := range tests {
		rec := doJSON(mux, "POST", "/pay", test.payload, nil)
		a.Equal(test.expectedCode, rec.Code, test.description)
	}
}

func TestCallbackBadSignature(t *testing.T) {
	mux, st := newTestApp(t)
	a := assert.New(t)

	doJSON(mux, "POST", "/submit-form", map[string]interface{}{
		"name": "A", "email": "a@x.com", "txnId": "T1",
	}, nil)

	body, _ := signedCallbackBody("T1", "PAYMENT_SUCCESS")
	rec := doJSON(mux, "POST", "/callback", body, map[string]string{"x-verify": "forged###1"})
	a.Equal(400, rec.Code)

	// Record unchanged, status query still PENDING
	sub, err := st.FindByTxnID("T1")
	a.NoError(err)
	a.Equal(models.PaymentStatusPending, sub.PaymentStatus)

	rec = doJSON(mux, "GET", "/check-status/T1", nil, nil)
	var statusBody struct {
		Status string `json:"status"`
	}
	a.NoError(json.Unmarshal(rec.Body.Bytes(), &statusBody))
	a.Equal("PENDING", statusBody.Status)
}

func TestCallbackUnknownTransaction(t *testing.T) {
	mux, _ := newTestApp(t)

	body, headers := signedCallbackBody("T999", "PAYMENT_SUCCESS")
	rec := doJSON(mux, "POST", "/callback", body, headers)
	assert.Equal(t, 404, rec.Code)
}

func TestCheckStatusNotFound(t *testing.T) {
	mux, _ := newTestApp(t)

	rec := doJSON(mux, "GET", "/check-status/T999", nil, nil)
	assert.Equal(t, 404, rec.Code)
}

func TestRedirectPage(t *testing.T) {
	mux, st := newTestApp(t)
	a := assert.New(t)

	doJSON(mux, "POST", "/submit-form", map[string]interface{}{
		"name": "A", "email": "a@x.com", "txnId": "T1",
	}, nil)

	// Pending: spinner visible, success panel hidden
	rec := doJSON(mux, "GET", "/redirect-url/T1", nil, nil)
	a.Equal(200, rec.Code)
	a.Contains(rec.Header().Get("Content-Type"), "text/html")
	a.Contains(rec.Body.String(), `<div id="loadingState" class="">`)
	a.Contains(rec.Body.String(), `<div id="successState" class="hidden">`)

	// Reconciled: success panel visible, spinner hidden
	sub, _ := st.FindByTxnID("T1")
	st.UpdatePaymentOutcome(sub.ID, models.PaymentStatusSuccess, []byte(`{"code":"PAYMENT_SUCCESS"}`))

	rec = doJSON(mux, "GET", "/redirect-url/T1", nil, nil)
	a.Equal(200, rec.Code)
	a.Contains(rec.Body.String(), `<div id="successState" class="">`)
	a.Contains(rec.Body.String(), `<div id="loadingState" class="hidden">`)

	// Missing transaction id
	rec = doJSON(mux, "GET", "/redirect-url/", nil, nil)
	a.Equal(400, rec.Code)
}

func TestExportSubmissions(t *testing.T) {
	mux, _ := newTestApp(t)
	a := assert.New(t)

	doJSON(mux, "POST", "/submit-form", map[string]interface{}{
		"name": "A", "email": "a@x.com", "txnId": "T1",
	}, nil)

	rec := doJSON(mux, "GET", "/export-submissions", nil, nil)
	a.Equal(200, rec.Code)
	a.Contains(rec.Header().Get("Content-Type"), "spreadsheetml")
	a.NotZero(rec.Body.Len())
}

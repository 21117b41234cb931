package services

import (
	"encoding/base64"
	"fmt"
	"testing"

	"registration-module/config"
	"registration-module/errors"
	"registration-module/models"
	"registration-module/store"
)

func setupCallbackConfig() {
	config.AppConfig = config.Config{
		MerchantID: "MERCHANT1",
		SaltKey:    "test-salt-key",
		SaltIndex:  1,
		GatewayURL: "https://gateway.example",
		AppBaseURL: "http://localhost:8080",
	}
}

func newPendingSubmission(t *testing.T, st store.Store, txnID string) *models.Submission {
	t.Helper()
	sub := &models.Submission{Name: "A", Email: "a@x.com", TxnID: txnID}
	if _, err := st.Insert(sub); err != nil {
		t.Fatalf("failed to seed submission: %v", err)
	}
	return sub
}

func signedCallback(txnID, code string) (payload, signature string) {
	raw := fmt.Sprintf(`{"merchantTransactionId":%q,"code":%q}`, txnID, code)
	payload = base64.StdEncoding.EncodeToString([]byte(raw))
	signature = Sign(payload, "", config.AppConfig.SaltKey, config.AppConfig.SaltIndex)
	return payload, signature
}

func TestMapOutcomeCode(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"PAYMENT_SUCCESS", models.PaymentStatusSuccess},
		{"PAYMENT_ERROR", models.PaymentStatusFailed},
		{"PAYMENT_DECLINED", models.PaymentStatusFailed},
		{"TIMED_OUT", models.PaymentStatusFailed},
		{"SOME_FUTURE_CODE", models.PaymentStatusFailed},
		{"", models.PaymentStatusFailed},
	}

	for _, c := range cases {
		if got := MapOutcomeCode(c.code); got != c.want {
			t.Errorf("MapOutcomeCode(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestProcessSuccessCallback(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	newPendingSubmission(t, st, "T1")
	svc := NewCallbackService(st, nil)

	payload, sig := signedCallback("T1", "PAYMENT_SUCCESS")
	if err := svc.Process(payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := st.FindByTxnID("T1")
	if got.PaymentStatus != models.PaymentStatusSuccess {
		t.Fatalf("expected SUCCESS, got %q", got.PaymentStatus)
	}
	if len(got.PaymentResponse) == 0 {
		t.Fatal("expected the decoded payload to be stored")
	}
}

func TestProcessFailureCallback(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	newPendingSubmission(t, st, "T1")
	svc := NewCallbackService(st, nil)

	payload, sig := signedCallback("T1", "PAYMENT_ERROR")
	if err := svc.Process(payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := st.FindByTxnID("T1")
	if got.PaymentStatus != models.PaymentStatusFailed {
		t.Fatalf("expected FAILED, got %q", got.PaymentStatus)
	}
}

func TestProcessBadSignatureLeavesStoreUntouched(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	newPendingSubmission(t, st, "T1")
	svc := NewCallbackService(st, nil)

	payload, _ := signedCallback("T1", "PAYMENT_SUCCESS")
	err := svc.Process(payload, "deadbeef###1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.KindOf(err) != errors.Unauthorized {
		t.Fatalf("expected Unauthorized kind, got %v", errors.KindOf(err))
	}

	got, _ := st.FindByTxnID("T1")
	if got.PaymentStatus != models.PaymentStatusPending {
		t.Fatalf("record must stay PENDING after a rejected callback, got %q", got.PaymentStatus)
	}
}

func TestProcessUnknownTransaction(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	svc := NewCallbackService(st, nil)

	payload, sig := signedCallback("T999", "PAYMENT_SUCCESS")
	err := svc.Process(payload, sig)
	if errors.KindOf(err) != errors.NotFound {
		t.Fatalf("expected NotFound kind, got %v", err)
	}
}

func TestProcessMalformedPayloadAfterValidSignature(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	svc := NewCallbackService(st, nil)

	// Valid signature over a payload that is not base64 JSON
	payload := "not-valid-base64!!!"
	sig := Sign(payload, "", config.AppConfig.SaltKey, config.AppConfig.SaltIndex)

	err := svc.Process(payload, sig)
	if errors.KindOf(err) != errors.Internal {
		t.Fatalf("expected Internal kind for a gateway contract violation, got %v", err)
	}
}

func TestProcessIdempotentRedelivery(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	newPendingSubmission(t, st, "T1")
	svc := NewCallbackService(st, nil)

	payload, sig := signedCallback("T1", "PAYMENT_SUCCESS")
	if err := svc.Process(payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same verified callback again
	if err := svc.Process(payload, sig); err != nil {
		t.Fatalf("redelivery of the same outcome must succeed: %v", err)
	}

	got, _ := st.FindByTxnID("T1")
	if got.PaymentStatus != models.PaymentStatusSuccess {
		t.Fatalf("expected SUCCESS after redelivery, got %q", got.PaymentStatus)
	}
}

func TestProcessConflictingRedelivery(t *testing.T) {
	setupCallbackConfig()
	st := store.NewMemory()
	newPendingSubmission(t, st, "T1")
	svc := NewCallbackService(st, nil)

	payload, sig := signedCallback("T1", "PAYMENT_SUCCESS")
	if err := svc.Process(payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second callback flips the outcome; it must be rejected
	payload, sig = signedCallback("T1", "PAYMENT_ERROR")
	err := svc.Process(payload, sig)
	if errors.KindOf(err) != errors.Conflict {
		t.Fatalf("expected Conflict kind, got %v", err)
	}

	got, _ := st.FindByTxnID("T1")
	if got.PaymentStatus != models.PaymentStatusSuccess {
		t.Fatalf("first outcome must win, got %q", got.PaymentStatus)
	}
}

package services

import (
	"time"

	"registration-module/config"
	"registration-module/logger"
)

// Payment lifecycle events are published best-effort: a Kafka outage
// must never fail the request that triggered the event.

// PublishPaymentInitiated publishes a payment.initiated event.
func PublishPaymentInitiated(txnID string, amount float64) {
	go publishEvent("payment.initiated", txnID, map[string]interface{}{
		"amount": amount,
		"status": "PENDING",
	})
}

// PublishPaymentOutcome publishes payment.success or payment.failed for
// a reconciled callback.
func PublishPaymentOutcome(txnID, status, code string) {
	event := "payment.failed"
	if status == "SUCCESS" {
		event = "payment.success"
	}
	go publishEvent(event, txnID, map[string]interface{}{
		"status": status,
		"code":   code,
	})
}

func publishEvent(event, txnID string, fields map[string]interface{}) {
	evt := map[string]interface{}{
		"event":  event,
		"txn_id": txnID,
		"ts":     time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range fields {
		evt[k] = v
	}

	if err := Publish(config.AppConfig.KafkaTopic, "txn-"+txnID, evt); err != nil {
		logger.Warn("Failed to publish %s event for %s: %v", event, txnID, err)
	}
}

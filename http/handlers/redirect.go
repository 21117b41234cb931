package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"registration-module/logger"
	"registration-module/models"
)

// RedirectURL serves the payment status page the gateway redirects the
// payer back to. The final status is prefetched from the store; while
// it is still PENDING the page re-checks once after a short delay to
// allow for callback latency.
func (h *Handler) RedirectURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	txnID := strings.TrimPrefix(r.URL.Path, "/redirect-url/")
	if txnID == "" {
		http.Error(w, "Transaction ID is missing.", http.StatusBadRequest)
		return
	}

	// Fetch the final status from the store to be sure; a miss or an
	// error renders the page in its verifying state.
	finalStatus := models.PaymentStatusPending
	if status, err := h.Status.Check(txnID); err == nil {
		finalStatus = status.Status
	} else {
		logger.Warn("Error prefetching status for txn %s: %v", txnID, err)
	}

	w.Header().Set("Content-Type", "text/html")
	if err := statusPage.Execute(w, statusPageData{
		TxnID:  txnID,
		Status: finalStatus,
	}); err != nil {
		logger.Error("Error rendering status page: %v", err)
	}
}

type statusPageData struct {
	TxnID  string
	Status string
}

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Payment Status | Imperial Fiesta</title>
    <link href="https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css" rel="stylesheet">
    <link href="https://fonts.googleapis.com/css2?family=Poppins:wght@400;600;700&display=swap" rel="stylesheet">
    <style>
        body { background: linear-gradient(135deg, #6d28d9, #2563eb); font-family: "Poppins", sans-serif; }
        .card { background-color: rgba(255, 255, 255, 0.98); backdrop-filter: blur(10px); border-radius: 1rem; box-shadow: 0 20px 40px rgba(0, 0, 0, 0.2); }
        .spinner { border-top-color: #6d28d9; }
        .icon-success { color: #10b981; }
        .icon-fail { color: #ef4444; }
        .btn-primary { background: linear-gradient(to right, #8b5cf6, #3b82f6); transition: all 0.3s ease; }
        .hidden { display: none; }
    </style>
</head>
<body class="min-h-screen flex flex-col items-center justify-center p-4">
    <div id="statusCard" class="card w-full max-w-md p-8 text-center">
        <div id="loadingState" class="{{if ne .Status "PENDING"}}hidden{{end}}">
            <div class="spinner animate-spin w-16 h-16 border-4 rounded-full mx-auto"></div>
            <h2 class="text-2xl font-bold text-gray-800 mt-6">Verifying Payment...</h2>
            <p class="text-gray-600 mt-2">Please wait, do not close this window.</p>
        </div>
        <div id="successState" class="{{if ne .Status "SUCCESS"}}hidden{{end}}">
            <div class="w-20 h-20 rounded-full bg-green-100 flex items-center justify-center mx-auto">
                <svg class="icon-success w-12 h-12" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M5 13l4 4L19 7"></path></svg>
            </div>
            <h2 class="text-2xl font-bold text-gray-800 mt-6">Payment Successful!</h2>
            <p class="text-gray-600 mt-2">Your registration is complete. A confirmation email has been sent.</p>
            <a href="/home.html" class="btn-primary text-white font-semibold py-2 px-6 rounded-lg mt-8 inline-block">Go to Homepage</a>
        </div>
        <div id="failureState" class="{{if ne .Status "FAILED"}}hidden{{end}}">
            <div class="w-20 h-20 rounded-full bg-red-100 flex items-center justify-center mx-auto">
                <svg class="icon-fail w-12 h-12" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M6 18L18 6M6 6l12 12"></path></svg>
            </div>
            <h2 class="text-2xl font-bold text-gray-800 mt-6">Payment Failed</h2>
            <p class="text-gray-600 mt-2" id="failureMessage">Your transaction could not be processed. Please try again.</p>
            <a href="/register.html" class="btn-primary text-white font-semibold py-2 px-6 rounded-lg mt-8 inline-block">Try Again</a>
        </div>
    </div>
    <script>
        (function () {
            if ("{{.Status}}" !== "PENDING") return;
            // One re-check after a fixed delay to allow for callback latency.
            setTimeout(function () {
                fetch("/check-status/{{.TxnID}}")
                    .then(function (res) { return res.json(); })
                    .then(function (body) {
                        document.getElementById("loadingState").classList.add("hidden");
                        if (body.status === "SUCCESS") {
                            document.getElementById("successState").classList.remove("hidden");
                        } else {
                            document.getElementById("failureState").classList.remove("hidden");
                        }
                    })
                    .catch(function () {
                        document.getElementById("loadingState").classList.add("hidden");
                        document.getElementById("failureState").classList.remove("hidden");
                    });
            }, 3000);
        })();
    </script>
</body>
</html>`))

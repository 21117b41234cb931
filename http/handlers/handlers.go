package handlers

import (
	"registration-module/services"
	"registration-module/store"
)

// Handler bundles the HTTP surface over its injected dependencies.
type Handler struct {
	Store     store.Store
	Payments  *services.PaymentService
	Callbacks *services.CallbackService
	Status    *services.StatusService
}

// New wires the default handler set over st.
func New(st store.Store) *Handler {
	return &Handler{
		Store:     st,
		Payments:  services.NewPaymentService(),
		Callbacks: services.NewCallbackService(st, services.SendConfirmationEmail),
		Status:    services.NewStatusService(st),
	}
}

package billing

import "github.com/noah-isme/backend-resto/internal/common"

// NewPaymentMethodHandler exposes payment method endpoints.
func NewPaymentMethodHandler(svc *PaymentMethodService, defaultPageSize, maxPageSize int) *common.CRUDHandler[PaymentMethod, PaymentMethodInput] {
	h := &common.CRUDHandler[PaymentMethod, PaymentMethodInput]{Name: "payment method", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}

// NewInvoiceHandler exposes invoice endpoints.
func NewInvoiceHandler(svc *InvoiceService, defaultPageSize, maxPageSize int) *common.CRUDHandler[Invoice, InvoiceInput] {
	h := &common.CRUDHandler[Invoice, InvoiceInput]{Name: "invoice", DefaultPageSize: defaultPageSize, MaxPageSize: maxPageSize}
	if svc != nil {
		h.Svc = svc
	}
	return h
}

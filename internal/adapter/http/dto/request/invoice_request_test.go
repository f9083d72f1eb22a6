package request

import (
	"errors"
	"testing"
	"time"
)

func TestInvoiceRequest_ResolveInvoiceDate(t *testing.T) {
	t.Run("bare date", func(t *testing.T) {
		r := InvoiceRequest{InvoiceDate: "2026-03-01"}
		got, err := r.ResolveInvoiceDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		r := InvoiceRequest{InvoiceDate: "2026-03-01T10:30:00Z"}
		got, err := r.ResolveInvoiceDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hour() != 10 || got.Minute() != 30 {
			t.Fatalf("unexpected time: %v", got)
		}
	})

	t.Run("empty resolves to zero time", func(t *testing.T) {
		r := InvoiceRequest{InvoiceDate: "  "}
		got, err := r.ResolveInvoiceDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		r := InvoiceRequest{InvoiceDate: "03/01/2026"}
		_, err := r.ResolveInvoiceDate()
		if !errors.Is(err, ErrInvalidInvoiceDate) {
			t.Fatalf("expected ErrInvalidInvoiceDate, got %v", err)
		}
	})
}

func TestInvoiceRequest_ResolveTrimsFields(t *testing.T) {
	r := InvoiceRequest{InvoiceNumber: "  INV-001 ", VendorName: " Acme Wholesale  "}
	if got := r.ResolveInvoiceNumber(); got != "INV-001" {
		t.Fatalf("expected trimmed invoice number, got %q", got)
	}
	if got := r.ResolveVendorName(); got != "Acme Wholesale" {
		t.Fatalf("expected trimmed vendor name, got %q", got)
	}
}

package billing

import (
	"github.com/factura/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineAmounts holds the derived currency fields of a single invoice line.
// All three values are rounded to 2 decimal places.
type LineAmounts struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// InvoiceTotals holds the invoice-level sums of the line amounts.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	VATTotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeLine derives subtotal/VAT/total for one line from quantity, unit
// price and VAT rate. VAT is computed on the already-rounded subtotal, not on
// the raw product: invoice-level totals reconcile line by line, and previously
// issued invoices were computed this way.
//
// ComputeLine is a pure function and performs no validation; callers must
// enforce quantity > 0, unitPrice >= 0 and vatRate in [0,1].
func ComputeLine(quantity, unitPrice, vatRate decimal.Decimal) LineAmounts {
	subtotal := valueobject.Round2(quantity.Mul(unitPrice))
	vat := valueobject.Round2(subtotal.Mul(vatRate))
	total := valueobject.Round2(subtotal.Add(vat))
	return LineAmounts{
		Subtotal: subtotal,
		VAT:      vat,
		Total:    total,
	}
}

// AggregateLines sums line items into invoice-level subtotal/VAT/total.
// Each field is the rounded sum of the corresponding line fields. Since every
// line amount already carries at most 2 decimals, rounding the sums again is
// idempotent.
func AggregateLines(items []InvoiceItem) InvoiceTotals {
	subtotal := decimal.Zero
	vatTotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineSubtotal)
		vatTotal = vatTotal.Add(item.LineVAT)
	}
	subtotal = valueobject.Round2(subtotal)
	vatTotal = valueobject.Round2(vatTotal)
	return InvoiceTotals{
		Subtotal: subtotal,
		VATTotal: vatTotal,
		Total:    valueobject.Round2(subtotal.Add(vatTotal)),
	}
}

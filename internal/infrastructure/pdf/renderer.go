// Package pdf renders the printable representation of an invoice as an
// A4 document.
//
// Page layout:
//
//	┌─────────────────────────────────────────────┐
//	│  ISSUER: name + NIT + address + contact      │
//	│  FACTURA ELECTRÓNICA DE VENTA + number       │
//	│  META: date / payment condition / currency   │
//	│  CUSTOMER: snapshot fields                   │
//	│  TABLE: Descripción | Cant | V/r Unit | Total│
//	│  TOTALS: base / IVA / TOTAL                  │
//	│  TAX TABLE: IVA BIENES 19.00                 │
//	│  RESOLUTION + simulated-document footer      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/factura/backend/internal/domain/billing"
)

var (
	colorDark  = &props.Color{Red: 17, Green: 17, Blue: 17}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorLight = &props.Color{Red: 248, Green: 250, Blue: 255}
)

// MarotoInvoiceRenderer draws invoices with Maroto v2. It is stateless and
// safe for concurrent use.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer constructs the renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer {
	return &MarotoInvoiceRenderer{}
}

// Render produces the PDF bytes for an invoice. The issuer name is replaced
// by the brand name when the invoice carries a supplier tag.
func (r *MarotoInvoiceRenderer) Render(invoice *billing.Invoice, issuer *billing.IssuerProfile) ([]byte, error) {
	issuerName := issuer.Name
	if invoice.Supplier != "" {
		issuerName = invoice.Supplier.DisplayName()
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.InvoiceNumber, true).
		WithAuthor(issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(issuerRows(issuerName, issuer)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorDark, Thickness: 0.5}))
	m.AddRows(titleRows(invoice)...)
	m.AddRows(dashedRule())
	m.AddRows(metaRows(invoice)...)
	m.AddRows(dashedRule())
	m.AddRows(customerRows(invoice.CustomerSnapshot)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorDark, Thickness: 0.5}))

	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(invoice.Items)...)
	m.AddRows(itemCountRow(len(invoice.Items)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorDark, Thickness: 0.5}))

	m.AddRows(totalsRows(invoice)...)
	m.AddRows(taxRows(invoice)...)
	m.AddRows(dashedRule())
	m.AddRows(footerRows(invoice, issuer)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return doc.GetBytes(), nil
}

func dashedRule() core.Row {
	return line.NewRow(2, props.Line{
		Color:     colorGray,
		Thickness: 0.2,
		Style:     linestyle.Dashed,
	})
}

func issuerRows(name string, issuer *billing.IssuerProfile) []core.Row {
	centered := func(s string) core.Row {
		return row.New(4).Add(col.New(12).Add(
			text.New(s, props.Text{Size: 8.5, Align: align.Center, Color: colorGray}),
		))
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 1,
			}),
		)),
		centered("NIT: " + issuer.NIT + "  ·  Responsable de IVA"),
	}
	if issuer.Address != "" {
		rows = append(rows, centered(issuer.Address))
	}
	if issuer.Phone != "" || issuer.Email != "" {
		rows = append(rows, centered("Tel: "+issuer.Phone+"  ·  "+issuer.Email))
	}
	return rows
}

func titleRows(invoice *billing.Invoice) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("FACTURA ELECTRÓNICA DE VENTA:", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 22, Align: align.Center, Top: 1,
			}),
		)),
	}
}

func kvRow(label, value string) core.Row {
	return row.New(5).Add(
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 0.5,
		})),
		col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 0.5})),
	)
}

func metaRows(invoice *billing.Invoice) []core.Row {
	issued := invoice.CreatedAt
	return []core.Row{
		kvRow("Fecha:", issued.Format("02/01/2006")+"   Hora: "+issued.Format("15:04:05")),
		kvRow("Condición de Pago:", "CONTADO"),
		kvRow("Moneda:", "COP (Pesos Colombianos)"),
	}
}

func customerRows(c billing.CustomerSnapshot) []core.Row {
	rows := []core.Row{
		kvRow("Cliente:", c.CompanyName),
		kvRow("NIT / CC:", c.NIT),
	}
	optional := []struct{ label, value string }{
		{"Dirección:", c.Address},
		{"Teléfono:", c.Phone},
		{"Email:", c.Email},
		{"Sitio web:", c.Website},
		{"Rep. Legal:", c.LegalRepresentative},
		{"Act. Económica:", c.EconomicActivity},
	}
	for _, f := range optional {
		if f.value != "" {
			rows = append(rows, kvRow(f.label, f.value))
		}
	}
	return rows
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorDark})
	}
	return row.New(7).Add(
		h("Descripción", 6, align.Left),
		h("Cant", 1, align.Center),
		h("V/r Unitario", 2, align.Right),
		h("Total (sin IVA)", 3, align.Right),
	)
}

func itemRows(items []billing.InvoiceItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for i, item := range items {
		name := item.ProductName
		if item.SKU != "" {
			name = fmt.Sprintf("%s (%s)", item.ProductName, item.SKU)
		}
		r := row.New(7).Add(
			col.New(6).Add(text.New(name, props.Text{
				Size: 9, Align: align.Left, Top: 1.5, Left: 1,
			})),
			col.New(1).Add(text.New(trimQuantity(item.Quantity), props.Text{
				Size: 9, Align: align.Center, Top: 1.5,
			})),
			col.New(2).Add(text.New("$"+formatMoney(item.UnitPrice), props.Text{
				Size: 9, Align: align.Right, Top: 1.5, Right: 1,
			})),
			col.New(3).Add(text.New("$"+formatMoney(item.LineSubtotal), props.Text{
				Size: 9, Align: align.Right, Top: 1.5, Right: 1,
			})),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorLight})
		}
		rows = append(rows, r)
	}
	return rows
}

func itemCountRow(count int) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("TOTAL ÍTEMS: %d", count), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 1.5,
		}),
	))
}

func totalsRows(invoice *billing.Invoice) []core.Row {
	amount := func(label string, value decimal.Decimal) core.Row {
		return row.New(5).Add(
			col.New(3),
			col.New(5).Add(text.New(label, props.Text{Size: 9, Top: 0.5})),
			col.New(4).Add(text.New("$"+formatMoney(value), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 0.5, Right: 1,
			})),
		)
	}
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("--- [ DETALLE DE VALORES ] ---", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
			}),
		)),
		amount("Vr. Exento (4%):", decimal.Zero),
		amount("Base Gravable (sin IVA):", invoice.Subtotal),
		amount("IVA (19%):", invoice.VATTotal),
		line.NewRow(2, props.Line{Color: colorDark, Thickness: 0.5}),
		row.New(9).Add(
			col.New(6).Add(text.New("TOTAL ........ .......", props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 1.5, Left: 5,
			})),
			col.New(6).Add(text.New("$"+formatMoney(invoice.Total), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 1.5, Right: 1,
			})),
		),
	}
}

func taxRows(invoice *billing.Invoice) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 230, Green: 230, Blue: 230}})
	}
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("--- [ INFORMACIÓN TRIBUTARIA ] ---", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
			}),
		)),
		row.New(6).Add(
			h("Descripción", 4, align.Left),
			h("%", 2, align.Right),
			h("Vr. Base", 3, align.Right),
			h("Vr. Impto.", 3, align.Right),
		),
		row.New(6).Add(
			col.New(4).Add(text.New("IVA BIENES", props.Text{
				Size: 9, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New("19.00", props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New("$"+formatMoney(invoice.Subtotal), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New("$"+formatMoney(invoice.VATTotal), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		),
	}
}

func footerRows(invoice *billing.Invoice, issuer *billing.IssuerProfile) []core.Row {
	small := func(s string) core.Row {
		return row.New(4).Add(col.New(12).Add(
			text.New(s, props.Text{Size: 7.5, Align: align.Center, Color: colorGray}),
		))
	}
	rows := []core.Row{}
	if issuer.Resolution != "" {
		rows = append(rows, small(issuer.Resolution), dashedRule())
	}
	rows = append(rows,
		small("Factura Electrónica (Simulada): "+invoice.InvoiceNumber),
		small("CUFE: "+invoice.CUFE),
		small("Generado por Factura Simulada  ·  Uso exclusivamente académico"),
		small(time.Now().Format("02/01/2006 15:04:05")),
	)
	return rows
}

// trimQuantity prints whole quantities without a decimal tail and keeps the
// fraction otherwise.
func trimQuantity(q decimal.Decimal) string {
	if q.IsInteger() {
		return q.StringFixed(0)
	}
	return q.String()
}

// formatMoney renders an amount with thousands separators and a comma for
// decimals, the es-CO way: 44030 becomes "44.030,00".
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

package receipt

import (
	"fmt"
	"strings"
	"time"
)

// Data holds everything needed to render a purchase receipt.
type Data struct {
	ReferenceNo  string
	Date         time.Time
	SupplierName string
	Items        []Line
	Total        float64
	PaidAmount   float64
	Remaining    float64
	PaymentType  string
	Notes        string
}

// Line is a single receipt line item.
type Line struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
	Discount    float64
	LineTotal   float64
}

// Renderer renders a receipt into a printable representation.
type Renderer interface {
	Render(data *Data) string
}

const lineWidth = 42

// TextRenderer renders plain text receipts suitable for logs, email
// bodies or raw printing.
type TextRenderer struct {
	StoreName string
}

// NewTextRenderer creates a text receipt renderer.
func NewTextRenderer(storeName string) *TextRenderer {
	return &TextRenderer{StoreName: storeName}
}

// Render produces the receipt text for a committed purchase.
func (r *TextRenderer) Render(data *Data) string {
	var b strings.Builder

	divider := strings.Repeat("-", lineWidth)

	b.WriteString(center(r.StoreName) + "\n")
	b.WriteString(center("PURCHASE RECEIPT") + "\n")
	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("Ref:      %s\n", data.ReferenceNo))
	b.WriteString(fmt.Sprintf("Date:     %s\n", data.Date.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Supplier: %s\n", data.SupplierName))
	b.WriteString(divider + "\n")

	for _, item := range data.Items {
		b.WriteString(item.ProductName + "\n")
		detail := fmt.Sprintf("  %d x %.2f", item.Quantity, item.UnitPrice)
		if item.Discount > 0 {
			detail += fmt.Sprintf(" -%.2f", item.Discount)
		}
		amount := fmt.Sprintf("%.2f", item.LineTotal)
		b.WriteString(padBetween(detail, amount) + "\n")
	}

	b.WriteString(divider + "\n")
	b.WriteString(padBetween("TOTAL", fmt.Sprintf("%.2f", data.Total)) + "\n")
	b.WriteString(padBetween("PAID ("+data.PaymentType+")", fmt.Sprintf("%.2f", data.PaidAmount)) + "\n")
	if data.Remaining > 0 {
		b.WriteString(padBetween("REMAINING", fmt.Sprintf("%.2f", data.Remaining)) + "\n")
	}
	if data.Notes != "" {
		b.WriteString(divider + "\n")
		b.WriteString("Notes: " + data.Notes + "\n")
	}
	b.WriteString(divider + "\n")
	b.WriteString(center("Thank you") + "\n")

	return b.String()
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func padBetween(left, right string) string {
	gap := lineWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

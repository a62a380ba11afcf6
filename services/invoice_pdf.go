package services

import (
	"fmt"
	"strings"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	invoiceDark  = color.Color{Red: 34, Green: 46, Blue: 38}
	invoiceMuted = color.Color{Red: 110, Green: 118, Blue: 108}
)

var invoiceStatus = map[string]string{
	models.OrderStatusPending:   "Pendiente de pago",
	models.OrderStatusPaid:      "Pagado",
	models.OrderStatusShipped:   "Enviado",
	models.OrderStatusDelivered: "Entregado",
	models.OrderStatusCancelled: "Cancelado",
	models.OrderStatusExpired:   "Caducado",
}

// InvoicePDF renders an order (with Items loaded) as an A4 invoice.
func InvoicePDF(order *models.Order, customerName, customerEmail string) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	text := func(s string, size float64, style consts.Style, c color.Color, align consts.Align) {
		m.Text(s, props.Text{Size: size, Style: style, Color: c, Align: align})
	}
	spacer := func(h float64) { m.Row(h, func() {}) }

	m.Row(15, func() {
		m.Col(12, func() { text("FACTURA", 24, consts.Bold, invoiceDark, consts.Left) })
	})
	m.Row(10, func() {
		m.Col(12, func() { text("ALEXIKA OUTDOOR", 16, consts.Bold, invoiceDark, consts.Left) })
	})
	m.Row(5, func() {
		m.Col(12, func() { text("pedidos@alexika.es", 9, consts.Normal, invoiceMuted, consts.Left) })
	})
	spacer(8)

	addr := order.Address()
	left := []string{customerName, customerEmail, addr.FullName, addr.Street,
		strings.TrimSpace(addr.PostalCode + " " + addr.City), addr.Province}
	right := []string{
		fmt.Sprintf("Pedido %s", order.OrderNumber),
		fmt.Sprintf("Fecha: %s", order.CreatedAt.Format("02/01/2006")),
		fmt.Sprintf("Estado: %s", invoiceStatus[order.Status]),
	}
	if order.PaymentReference != nil {
		right = append(right, fmt.Sprintf("Pago: %s", *order.PaymentReference))
	}

	m.Row(5, func() {
		m.Col(6, func() { text("FACTURAR A", 8, consts.Bold, invoiceDark, consts.Left) })
		m.Col(6, func() { text("DATOS DEL PEDIDO", 8, consts.Bold, invoiceDark, consts.Right) })
	})
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		if l == "" && r == "" {
			continue
		}
		m.Row(5, func() {
			m.Col(6, func() { text(l, 9, consts.Normal, invoiceMuted, consts.Left) })
			m.Col(6, func() { text(r, 9, consts.Normal, invoiceMuted, consts.Right) })
		})
	}
	spacer(8)

	m.Row(6, func() {
		m.Col(6, func() { text("Descripción", 8, consts.Bold, invoiceDark, consts.Left) })
		m.Col(2, func() { text("Cant.", 8, consts.Bold, invoiceDark, consts.Right) })
		m.Col(2, func() { text("Precio", 8, consts.Bold, invoiceDark, consts.Right) })
		m.Col(2, func() { text("Total", 8, consts.Bold, invoiceDark, consts.Right) })
	})
	for _, item := range order.Items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() { text(item.ProductName, 9, consts.Normal, invoiceDark, consts.Left) })
			m.Col(2, func() { text(fmt.Sprintf("%d", item.Quantity), 9, consts.Normal, invoiceDark, consts.Right) })
			m.Col(2, func() { text(utils.FormatPrice(item.Price), 9, consts.Normal, invoiceDark, consts.Right) })
			m.Col(2, func() { text(utils.FormatPrice(item.Subtotal), 9, consts.Normal, invoiceDark, consts.Right) })
		})
	}
	spacer(8)

	summary := []struct {
		label  string
		amount float64
	}{
		{"Subtotal", order.Subtotal},
		{"IVA incluido", order.Tax},
		{"Envío", order.ShippingCost},
	}
	for _, s := range summary {
		s := s
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() { text(s.label, 9, consts.Normal, invoiceMuted, consts.Right) })
			m.Col(2, func() { text(utils.FormatPrice(s.amount), 9, consts.Normal, invoiceDark, consts.Right) })
		})
	}
	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() { text("Total", 12, consts.Bold, invoiceDark, consts.Right) })
		m.Col(2, func() { text(utils.FormatPrice(order.Total), 12, consts.Bold, invoiceDark, consts.Right) })
	})
	spacer(12)

	m.Row(5, func() {
		m.Col(12, func() { text("¡Gracias por tu compra!", 8, consts.Bold, invoiceDark, consts.Left) })
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

package notify

import (
	"fmt"
	"html/template"
	"strings"

	"zigueroutine/internal/model"
)

// The operator email mirrors the storefront's order summary: one row per
// line item with its subtotal, then the caller-computed grand total.
var emailTmpl = template.Must(template.New("order").Parse(`
<div style="font-family:sans-serif;max-width:500px;margin:0 auto">
  <h2 style="margin-bottom:4px">Encomenda {{.Code}}</h2>
  <p style="color:#666;margin-top:0">Cliente: <strong>{{.CustomerName}}</strong></p>
  <p style="color:#666;margin-top:0">Telefone: <strong>{{.Phone}}</strong></p>
  <table style="width:100%;border-collapse:collapse;font-size:14px">
    <thead>
      <tr style="background:#f9f9f9">
        <th style="padding:8px 12px;text-align:left">Pneu</th>
        <th style="padding:8px 12px;text-align:center">Qtd</th>
        <th style="padding:8px 12px;text-align:right">Subtotal</th>
      </tr>
    </thead>
    <tbody>
{{range .Lines}}      <tr>
        <td style="padding:8px 12px;border-bottom:1px solid #eee">{{.Label}}</td>
        <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:center">{{.Qty}}</td>
        <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:right">{{.Subtotal}}&euro;</td>
      </tr>
{{end}}    </tbody>
  </table>
  <p style="font-size:16px;font-weight:bold;text-align:right;margin-top:12px">
    Total: {{.Total}}&euro;
  </p>
</div>
`))

type emailLine struct {
	Label    string
	Qty      int
	Subtotal string
}

type emailData struct {
	Code         string
	CustomerName string
	Phone        string
	Lines        []emailLine
	Total        string
}

// Subject returns the notification subject for an order.
func Subject(order *model.Order) string {
	return fmt.Sprintf("Nova encomenda %s — %s", order.Code, order.Phone)
}

// RenderBody renders the HTML notification body for an order.
func RenderBody(order *model.Order) (string, error) {
	data := emailData{
		Code:         order.Code,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Lines:        make([]emailLine, 0, len(order.Items)),
		Total:        fmt.Sprintf("%.2f", order.Total),
	}
	for _, it := range order.Items {
		data.Lines = append(data.Lines, emailLine{
			Label:    fmt.Sprintf("%s %s", it.Brand, it.Name),
			Qty:      it.Qty,
			Subtotal: fmt.Sprintf("%.2f", it.Subtotal()),
		})
	}

	var b strings.Builder
	if err := emailTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render order email: %w", err)
	}
	return b.String(), nil
}

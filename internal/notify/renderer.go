package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

var templates = template.Must(template.New("email").Parse(`
{{define "order_confirmation"}}<html><body>
<p>Hello {{.User.Name}},</p>
<p>Thank you for your order #{{.Order.ID}}.</p>
<table>
<tr><th>Variant</th><th>Quantity</th><th>Unit price</th><th>Total</th></tr>
{{range .Lines}}<tr><td>{{.VariantID}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td><td>{{.Total}}</td></tr>
{{end}}</table>
<p>Order total: {{.Total}}</p>
</body></html>{{end}}

{{define "status_update"}}<html><body>
<p>Hello {{.User.Name}},</p>
<p>Your order #{{.Order.ID}} is now <b>{{.Order.Status}}</b>.</p>
</body></html>{{end}}
`))

type emailLine struct {
	VariantID int64
	Quantity  int
	UnitPrice string
	Total     string
}

type emailData struct {
	User  entities.User
	Order entities.Order
	Lines []emailLine
	Total string
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(kind entities.NotificationKind, user entities.User, order entities.Order) (string, string, error) {
	var subject string
	switch kind {
	case entities.NotificationOrderConfirmation:
		subject = fmt.Sprintf("Order #%d confirmed", order.ID)
	case entities.NotificationStatusUpdate:
		subject = fmt.Sprintf("Order #%d: %s", order.ID, order.Status)
	default:
		return "", "", fmt.Errorf("unknown notification kind %q", kind)
	}

	data := emailData{User: user, Order: order, Total: order.Total.StringFixed(2)}
	for _, l := range order.Lines {
		data.Lines = append(data.Lines, emailLine{
			VariantID: l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Total:     l.Total().StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(kind), data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", kind, err)
	}
	return subject, buf.String(), nil
}

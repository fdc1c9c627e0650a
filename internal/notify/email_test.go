package notify

import (
	"testing"
	"time"

	"zigueroutine/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *model.Order {
	return &model.Order{
		Code:         "KD0381",
		CustomerName: "Maria Silva",
		Phone:        "+351 912 345 678",
		Items: []model.LineItem{
			{Brand: "Michelin", Name: "205/55 R16", Price: 62, Qty: 2},
			{Brand: "Kumho", Name: "195/65 R15", Price: 37, Qty: 1},
		},
		Total:     161,
		CreatedAt: time.Now(),
	}
}

func TestSubject(t *testing.T) {
	got := Subject(sampleOrder())
	assert.Equal(t, "Nova encomenda KD0381 — +351 912 345 678", got)
}

func TestRenderBody(t *testing.T) {
	body, err := RenderBody(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, body, "Encomenda KD0381")
	assert.Contains(t, body, "Maria Silva")
	assert.Contains(t, body, "+351 912 345 678")

	// Per-line subtotals with two decimals.
	assert.Contains(t, body, "Michelin 205/55 R16")
	assert.Contains(t, body, "124.00")
	assert.Contains(t, body, "Kumho 195/65 R15")
	assert.Contains(t, body, "37.00")

	assert.Contains(t, body, "Total: 161.00")
}

func TestRenderBody_EscapesCustomerInput(t *testing.T) {
	order := sampleOrder()
	order.CustomerName = `<script>alert("x")</script>`

	body, err := RenderBody(order)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

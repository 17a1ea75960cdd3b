package response

import (
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"
)

type InvoiceListItem struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"name"`
	Email        string `json:"email"`
	ImageURL     string `json:"image_url,omitempty"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
	Date         string `json:"date"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
}

func FromInvoiceViews(views []*queries.InvoiceView) InvoiceListResponse {
	items := make([]InvoiceListItem, 0, len(views))
	for _, v := range views {
		items = append(items, InvoiceListItem{
			ID:           v.ID.String(),
			CustomerID:   v.CustomerID.String(),
			CustomerName: v.CustomerName,
			Email:        v.Email,
			ImageURL:     v.ImageURL,
			Amount:       v.Amount.StringFixed(2),
			Status:       v.Status,
			Date:         v.Date,
		})
	}
	return InvoiceListResponse{Invoices: items}
}

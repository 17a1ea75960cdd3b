package api

import (
	"net/http"

	reqdto "github.com/Technologic101/nextjs-dashboard/internal/handler/dto/request"
	resdto "github.com/Technologic101/nextjs-dashboard/internal/handler/dto/response"
	"github.com/Technologic101/nextjs-dashboard/internal/handler/httperr"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary Create invoice
// @Description Validate the submitted form and create an invoice
// @Tags invoices
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in dollars"
// @Param status formData string true "pending or paid"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 422 {object} resdto.FormState
// @Failure 500 {object} resdto.FormState
// @Router /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	form, err := reqdto.BindForm(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form", nil)
		return
	}
	writeOutcome(c, h.cmds.CreateInvoice(c.Request.Context(), form))
}

// @Summary Update invoice
// @Description Validate the submitted form and update customer, amount and status
// @Tags invoices
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param id path string true "Invoice ID"
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in dollars"
// @Param status formData string true "pending or paid"
// @Success 303 "Redirect to /dashboard/invoices"
// @Failure 422 {object} resdto.FormState
// @Failure 500 {object} resdto.FormState
// @Router /dashboard/invoices/{id}/edit [post]
func (h *InvoiceHandler) Update(c *gin.Context) {
	form, err := reqdto.BindForm(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form", nil)
		return
	}
	writeOutcome(c, h.cmds.UpdateInvoice(c.Request.Context(), c.Param("id"), form))
}

// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.FormState
// @Failure 500 {object} resdto.FormState
// @Router /dashboard/invoices/{id}/delete [post]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	writeOutcome(c, h.cmds.DeleteInvoice(c.Request.Context(), c.Param("id")))
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {object} resdto.InvoiceListResponse
// @Failure 500 {object} map[string]string
// @Router /dashboard/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	views, err := h.q.ListInvoices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load invoices", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceViews(views))
}

func writeOutcome(c *gin.Context, o commands.Outcome) {
	switch o.Kind {
	case commands.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, o.RedirectTo)
	case commands.OutcomeSuccess:
		c.JSON(http.StatusOK, resdto.FromOutcome(o))
	default:
		status := http.StatusInternalServerError
		if len(o.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, resdto.FromOutcome(o))
	}
}

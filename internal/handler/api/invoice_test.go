//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Technologic101/nextjs-dashboard/internal/handler/api"
	resdto "github.com/Technologic101/nextjs-dashboard/internal/handler/dto/response"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/queries"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"
	"github.com/Technologic101/nextjs-dashboard/tests/common/builder"
	"github.com/Technologic101/nextjs-dashboard/tests/common/httptest"
	"github.com/Technologic101/nextjs-dashboard/tests/common/testutil"
	commandsmock "github.com/Technologic101/nextjs-dashboard/tests/mock/commands"
	queriesmock "github.com/Technologic101/nextjs-dashboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInvoiceCommands
	mockQueries  *queriesmock.MockInvoiceQueries
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	h := api.NewInvoiceHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/dashboard/invoices", h.Create)
	s.router.GET("/dashboard/invoices", h.List)
	s.router.POST("/dashboard/invoices/:id/edit", h.Update)
	s.router.POST("/dashboard/invoices/:id/delete", h.Delete)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func (s *InvoiceHandlerTestSuite) TestCreate() {
	url := "/dashboard/invoices"
	values := builder.NewInvoiceBuilder().BuildValues()
	form := builder.NewInvoiceBuilder().BuildForm()

	s.Run("success: url-encoded form redirects with 303", func() {
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), form).
			Return(commands.Redirect(shared.InvoicesPath)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, values)
		httptest.AssertRedirect(s.T(), rec, shared.InvoicesPath)
	})

	s.Run("success: multipart form is bound the same way", func() {
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), form).
			Return(commands.Redirect(shared.InvoicesPath)).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, values)
		httptest.AssertRedirect(s.T(), rec, shared.InvoicesPath)
	})

	s.Run("success: absent fields stay absent in the bound form", func() {
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), builder.NewInvoiceBuilder().BuildFormWithout("status")).
			Return(commands.Redirect(shared.InvoicesPath)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url,
			testutil.FormValues(values, testutil.Field("status", nil)))
		httptest.AssertRedirect(s.T(), rec, shared.InvoicesPath)
	})

	s.Run("error: validation failure returns 422 with field errors", func() {
		fieldErrors := validation.FieldErrors{"amount": {commands.MsgAmountPositive}}
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(commands.Failure(commands.MsgCreateMissingFields, fieldErrors)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url,
			testutil.FormValues(values, testutil.Field("amount", "0")))
		state := httptest.AssertFormState(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgCreateMissingFields)
		s.Equal([]string{commands.MsgAmountPositive}, state.Errors["amount"])
		s.Empty(httptest.Location(rec))
	})

	s.Run("error: store failure returns 500 without field errors", func() {
		s.mockCommands.EXPECT().CreateInvoice(gomock.Any(), form).
			Return(commands.Failure(commands.MsgCreateFailed, nil)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, values)
		state := httptest.AssertFormState(s.T(), rec, http.StatusInternalServerError, commands.MsgCreateFailed)
		s.Empty(state.Errors)
	})
}

func (s *InvoiceHandlerTestSuite) TestUpdate() {
	id := uuid.NewString()
	url := "/dashboard/invoices/" + id + "/edit"
	values := builder.NewInvoiceBuilder().WithStatus("paid").BuildValues()
	form := builder.NewInvoiceBuilder().WithStatus("paid").BuildForm()

	s.Run("success: passes the path id through and redirects", func() {
		s.mockCommands.EXPECT().UpdateInvoice(gomock.Any(), id, form).
			Return(commands.Redirect(shared.InvoicesPath)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, values)
		httptest.AssertRedirect(s.T(), rec, shared.InvoicesPath)
	})

	s.Run("error: validation failure returns 422", func() {
		fieldErrors := validation.FieldErrors{"status": {commands.MsgSelectStatus}}
		s.mockCommands.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).
			Return(commands.Failure(commands.MsgUpdateMissingFields, fieldErrors)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url,
			testutil.FormValues(values, testutil.Field("status", "overdue")))
		state := httptest.AssertFormState(s.T(), rec, http.StatusUnprocessableEntity, commands.MsgUpdateMissingFields)
		s.Equal([]string{commands.MsgSelectStatus}, state.Errors["status"])
	})

	s.Run("error: store failure returns 500 and no redirect", func() {
		s.mockCommands.EXPECT().UpdateInvoice(gomock.Any(), id, form).
			Return(commands.Failure(commands.MsgUpdateFailed, nil)).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, values)
		httptest.AssertFormState(s.T(), rec, http.StatusInternalServerError, commands.MsgUpdateFailed)
		s.Empty(httptest.Location(rec))
	})
}

func (s *InvoiceHandlerTestSuite) TestDelete() {
	id := uuid.NewString()
	url := "/dashboard/invoices/" + id + "/delete"

	s.Run("success: returns 200 with message", func() {
		s.mockCommands.EXPECT().DeleteInvoice(gomock.Any(), id).
			Return(commands.Success(commands.MsgDeleted)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url)
		httptest.AssertFormState(s.T(), rec, http.StatusOK, commands.MsgDeleted)
		s.Empty(httptest.Location(rec))
	})

	s.Run("error: failure returns 500", func() {
		s.mockCommands.EXPECT().DeleteInvoice(gomock.Any(), "not-a-uuid").
			Return(commands.Failure(commands.MsgDeleteFailed, nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/dashboard/invoices/not-a-uuid/delete")
		httptest.AssertFormState(s.T(), rec, http.StatusInternalServerError, commands.MsgDeleteFailed)
	})
}

func (s *InvoiceHandlerTestSuite) TestList() {
	url := "/dashboard/invoices"

	s.Run("success: renders amounts with two decimals", func() {
		view := &queries.InvoiceView{
			ID:           uuid.New(),
			CustomerID:   uuid.MustParse(builder.DefaultCustomerID),
			CustomerName: "Evil Rabbit",
			Email:        "evil@rabbit.com",
			Amount:       decimal.RequireFromString("15.3"),
			Status:       "pending",
			Date:         "2024-06-01",
		}
		s.mockQueries.EXPECT().ListInvoices(gomock.Any()).
			Return([]*queries.InvoiceView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url)

		var body resdto.InvoiceListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Invoices, 1)
		s.Equal("15.30", body.Invoices[0].Amount)
		s.Equal(view.ID.String(), body.Invoices[0].ID)
		s.Equal("Evil Rabbit", body.Invoices[0].CustomerName)
	})

	s.Run("success: empty list encodes as an empty array", func() {
		s.mockQueries.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"invoices":[]}`, rec.Body.String())
	})

	s.Run("error: read failure returns 500", func() {
		s.mockQueries.EXPECT().ListInvoices(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load invoices")
	})
}

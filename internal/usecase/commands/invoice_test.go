//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/infra"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/clock"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"
	"github.com/Technologic101/nextjs-dashboard/tests/common/builder"
	sharedmock "github.com/Technologic101/nextjs-dashboard/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	invoices *sharedmock.MockInvoiceRepository
	payments *sharedmock.MockPaymentRepository
	cache    *sharedmock.MockViewCache
	clock    *clock.FixedClock
	cmds     commands.InvoiceCommands
}

func (s *InvoiceCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.invoices = sharedmock.NewMockInvoiceRepository(s.mockCtrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.mockCtrl)
	s.cache = sharedmock.NewMockViewCache(s.mockCtrl)
	s.clock = clock.NewFixedClock(time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC))
	s.cmds = commands.NewInvoiceCommands(s.uow, s.cache, s.clock)

	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Invoices().Return(s.invoices).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
}

func (s *InvoiceCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceCommandsSuite(t *testing.T) {
	suite.Run(t, new(InvoiceCommandsTestSuite))
}

// expectTx runs the unit of work callback against the mocked transaction.
func (s *InvoiceCommandsTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func (s *InvoiceCommandsTestSuite) TestCreateInvoice() {
	s.Run("success: stores cents and today's date, then revalidates and redirects", func() {
		form := builder.NewInvoiceBuilder().WithAmount("15.30").BuildForm()
		id := uuid.New()

		s.expectTx()
		s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, inv *invoice.Invoice) (uuid.UUID, error) {
				s.Equal(int64(1530), inv.Details().Amount().Cents())
				s.Equal(builder.DefaultCustomerID, inv.Details().CustomerID().String())
				s.Equal(invoice.StatusPending, inv.Details().Status())
				s.Equal("2026-10-17", inv.DateString())
				inv.AssignID(id)
				return id, nil
			})
		s.cache.EXPECT().Revalidate(gomock.Any(), shared.InvoicesPath).Times(1)

		out := s.cmds.CreateInvoice(s.ctx, form)

		s.Equal(commands.Redirect(shared.InvoicesPath), out)
	})

	s.Run("validation failure: no store access", func() {
		cases := []struct {
			name      string
			form      validation.Form
			wantField string
			wantMsg   string
		}{
			{"zero amount", builder.NewInvoiceBuilder().WithAmount("0").BuildForm(), "amount", commands.MsgAmountPositive},
			{"negative amount", builder.NewInvoiceBuilder().WithAmount("-5").BuildForm(), "amount", commands.MsgAmountPositive},
			{"non numeric amount", builder.NewInvoiceBuilder().WithAmount("ten").BuildForm(), "amount", commands.MsgAmountPositive},
			{"huge exponent amount", builder.NewInvoiceBuilder().WithAmount("1e50000000").BuildForm(), "amount", commands.MsgAmountPositive},
			{"tiny exponent amount", builder.NewInvoiceBuilder().WithAmount("1e-50000000").BuildForm(), "amount", commands.MsgAmountPositive},
			{"missing status", builder.NewInvoiceBuilder().BuildFormWithout("status"), "status", commands.MsgSelectStatus},
			{"unknown status", builder.NewInvoiceBuilder().WithStatus("overdue").BuildForm(), "status", commands.MsgSelectStatus},
			{"missing customer", builder.NewInvoiceBuilder().BuildFormWithout("customerId"), "customerId", commands.MsgSelectCustomer},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				out := s.cmds.CreateInvoice(s.ctx, tc.form)

				s.True(out.IsFailure())
				s.Equal(commands.MsgCreateMissingFields, out.Message)
				s.Equal([]string{tc.wantField}, out.Errors.Fields())
				s.Equal([]string{tc.wantMsg}, out.Errors[tc.wantField])
			})
		}
	})

	s.Run("store failure: fixed message, no revalidation", func() {
		s.expectTx()
		s.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create invoice", assertErr))

		out := s.cmds.CreateInvoice(s.ctx, builder.NewInvoiceBuilder().BuildForm())

		s.Equal(commands.Failure(commands.MsgCreateFailed, nil), out)
	})
}

func (s *InvoiceCommandsTestSuite) TestUpdateInvoice() {
	id := uuid.New()

	s.Run("success: updates details only, then revalidates and redirects", func() {
		s.expectTx()
		s.invoices.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, d invoice.Details) (int64, error) {
				s.Equal(int64(9999), d.Amount().Cents())
				s.Equal(invoice.StatusPaid, d.Status())
				return 1, nil
			})
		s.cache.EXPECT().Revalidate(gomock.Any(), shared.InvoicesPath).Times(1)

		form := builder.NewInvoiceBuilder().WithAmount("99.99").WithStatus("paid").BuildForm()
		out := s.cmds.UpdateInvoice(s.ctx, id.String(), form)

		s.Equal(commands.Redirect(shared.InvoicesPath), out)
	})

	s.Run("nonexistent id is still a redirect", func() {
		s.expectTx()
		s.invoices.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).Return(int64(0), nil)
		s.cache.EXPECT().Revalidate(gomock.Any(), shared.InvoicesPath).Times(1)

		out := s.cmds.UpdateInvoice(s.ctx, id.String(), builder.NewInvoiceBuilder().BuildForm())

		s.True(out.IsRedirect())
	})

	s.Run("validation failure: field errors, no store access", func() {
		form := builder.NewInvoiceBuilder().WithAmount("").BuildForm()

		out := s.cmds.UpdateInvoice(s.ctx, id.String(), form)

		s.True(out.IsFailure())
		s.Equal(commands.MsgUpdateMissingFields, out.Message)
		s.Equal([]string{commands.MsgAmountPositive}, out.Errors["amount"])
	})

	s.Run("out-of-range exponent: field error, no store access", func() {
		for _, amount := range []string{"1e50000000", "1e-50000000"} {
			form := builder.NewInvoiceBuilder().WithAmount(amount).BuildForm()

			out := s.cmds.UpdateInvoice(s.ctx, id.String(), form)

			s.True(out.IsFailure())
			s.Equal(commands.MsgUpdateMissingFields, out.Message)
			s.Equal([]string{commands.MsgAmountPositive}, out.Errors["amount"])
		}
	})

	s.Run("malformed id: failure without store access", func() {
		out := s.cmds.UpdateInvoice(s.ctx, "not-a-uuid", builder.NewInvoiceBuilder().BuildForm())

		s.Equal(commands.Failure(commands.MsgUpdateFailed, nil), out)
	})

	s.Run("store failure: no revalidation, no redirect", func() {
		s.expectTx()
		s.invoices.EXPECT().Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to update invoice", assertErr))

		out := s.cmds.UpdateInvoice(s.ctx, id.String(), builder.NewInvoiceBuilder().BuildForm())

		s.Equal(commands.Failure(commands.MsgUpdateFailed, nil), out)
	})
}

func (s *InvoiceCommandsTestSuite) TestDeleteInvoice() {
	id := uuid.New()

	s.Run("success: revalidates and reports success without redirect", func() {
		s.expectTx()
		s.payments.EXPECT().DeleteByInvoiceID(gomock.Any(), gomock.Any(), id).Return(int64(2), nil)
		s.cache.EXPECT().Revalidate(gomock.Any(), shared.InvoicesPath).Times(1)

		out := s.cmds.DeleteInvoice(s.ctx, id.String())

		s.Equal(commands.Success(commands.MsgDeleted), out)
		s.Empty(out.RedirectTo)
	})

	s.Run("idempotent: deleting twice succeeds both times", func() {
		for range 2 {
			s.expectTx()
			s.payments.EXPECT().DeleteByInvoiceID(gomock.Any(), gomock.Any(), id).Return(int64(0), nil)
			s.cache.EXPECT().Revalidate(gomock.Any(), shared.InvoicesPath).Times(1)

			out := s.cmds.DeleteInvoice(s.ctx, id.String())
			s.Equal(commands.Success(commands.MsgDeleted), out)
		}
	})

	s.Run("malformed id: failure without store access", func() {
		out := s.cmds.DeleteInvoice(s.ctx, "42")

		s.Equal(commands.Failure(commands.MsgDeleteFailed, nil), out)
	})

	s.Run("store failure: no revalidation", func() {
		s.expectTx()
		s.payments.EXPECT().DeleteByInvoiceID(gomock.Any(), gomock.Any(), id).
			Return(int64(0), infra.WrapRepoErr("failed to delete payments", assertErr))

		out := s.cmds.DeleteInvoice(s.ctx, id.String())

		s.Equal(commands.Failure(commands.MsgDeleteFailed, nil), out)
	})
}

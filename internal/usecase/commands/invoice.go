package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Technologic101/nextjs-dashboard/internal/domain/invoice"
	"github.com/Technologic101/nextjs-dashboard/internal/pkg/clock"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"
	"github.com/Technologic101/nextjs-dashboard/internal/validation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/commands/invoice.go -package=commandsmock

const (
	MsgCreateMissingFields = "Missing Fields. Failed to create invoice."
	MsgCreateFailed        = "Failed to create invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to update invoice."
	MsgUpdateFailed        = "Failed to update invoice."
	MsgDeleted             = "Invoice deleted successfully"
	MsgDeleteFailed        = "Failed to delete invoice."
)

// InvoiceCommands never return store errors to the caller. Every failure is
// logged and reduced to a fixed message on the Outcome.
type InvoiceCommands interface {
	CreateInvoice(ctx context.Context, form validation.Form) Outcome
	UpdateInvoice(ctx context.Context, id string, form validation.Form) Outcome
	DeleteInvoice(ctx context.Context, id string) Outcome
}

type invoiceCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.ViewCache
	clock clock.Clock
}

func NewInvoiceCommands(uow shared.UnitOfWork, cache shared.ViewCache, clk clock.Clock) InvoiceCommands {
	return &invoiceCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (c *invoiceCommandsImpl) CreateInvoice(ctx context.Context, form validation.Form) Outcome {
	parsed := CreateInvoiceForm.SafeParse(form)
	if !parsed.OK() {
		return Failure(MsgCreateMissingFields, parsed.Errors())
	}

	details, err := parsed.Data().Details()
	if err != nil {
		slog.Error("invoice draft rejected by domain", "error", err.Error())
		return Failure(MsgCreateFailed, nil)
	}
	inv := invoice.NewInvoice(details, c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Invoices().Create(ctx, tx.DB(), inv)
		return derr
	})
	if err != nil {
		slog.Error("failed to create invoice", "error", err.Error())
		return Failure(MsgCreateFailed, nil)
	}

	slog.Info("invoice created", "invoice_id", inv.ID(), "date", inv.DateString())
	c.cache.Revalidate(ctx, shared.InvoicesPath)
	return Redirect(shared.InvoicesPath)
}

func (c *invoiceCommandsImpl) UpdateInvoice(ctx context.Context, id string, form validation.Form) Outcome {
	draft, err := UpdateInvoiceForm.Parse(form)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return Failure(MsgUpdateMissingFields, verr.Fields)
		}
		slog.Error("unexpected invoice form error", "error", err.Error())
		return Failure(MsgUpdateFailed, nil)
	}

	invoiceID, err := uuid.Parse(id)
	if err != nil {
		slog.Warn("invalid invoice id", "invoice_id", id)
		return Failure(MsgUpdateFailed, nil)
	}

	details, err := draft.Details()
	if err != nil {
		slog.Error("invoice draft rejected by domain", "error", err.Error())
		return Failure(MsgUpdateFailed, nil)
	}

	var affected int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Invoices().Update(ctx, tx.DB(), invoiceID, details)
		affected = n
		return derr
	})
	if err != nil {
		slog.Error("failed to update invoice", "invoice_id", invoiceID, "error", err.Error())
		return Failure(MsgUpdateFailed, nil)
	}
	if affected == 0 {
		slog.Warn("update matched no invoice", "invoice_id", invoiceID)
	}

	c.cache.Revalidate(ctx, shared.InvoicesPath)
	return Redirect(shared.InvoicesPath)
}

// DeleteInvoice removes the payments recorded against the invoice. The invoice
// row itself is left in place, and no match counts as success.
func (c *invoiceCommandsImpl) DeleteInvoice(ctx context.Context, id string) Outcome {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		slog.Warn("invalid invoice id", "invoice_id", id)
		return Failure(MsgDeleteFailed, nil)
	}

	var affected int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Payments().DeleteByInvoiceID(ctx, tx.DB(), invoiceID)
		affected = n
		return derr
	})
	if err != nil {
		slog.Error("failed to delete invoice", "invoice_id", invoiceID, "error", err.Error())
		return Failure(MsgDeleteFailed, nil)
	}

	slog.Debug("payments deleted", "invoice_id", invoiceID, "rows", affected)
	c.cache.Revalidate(ctx, shared.InvoicesPath)
	return Success(MsgDeleted)
}

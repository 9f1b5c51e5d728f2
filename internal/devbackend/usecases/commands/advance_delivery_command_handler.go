package commands

import (
	"context"
	"time"

	"driverapp/internal/core/domain/model/order"
)

// AdvanceDeliveryCommandHandler applies a pickup or completion inside one
// transaction. The order row stays locked between read and write so two
// drivers cannot pick up the same order.
//
// Errors:
//   - errs.ErrObjectNotFound for an unknown order
//   - delivery.ErrInvalidTransition when the status does not allow the step
//   - delivery.ErrAssignedToAnotherDriver when the order belongs to someone else
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

func NewAdvanceDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the order as stored after the transition.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.Target() == order.OnDelivery {
		err = d.PickUp(cmd.DriverID(), h.now())
	} else {
		err = d.Complete(cmd.DriverID(), h.now())
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d.Order(), nil
}

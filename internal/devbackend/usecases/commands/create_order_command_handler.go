package commands

import (
	"context"
)

// CreateOrderCommandHandler stores a new order and returns its generated id.
type CreateOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory DeliveryUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.DeliveryRepository().Add(ctx, cmd.Draft())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return created.ID(), nil
}

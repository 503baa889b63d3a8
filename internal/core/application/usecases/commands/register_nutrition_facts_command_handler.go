package commands

import (
	"context"

	"menu/internal/core/domain/model/nutrition"
)

// RegisterNutritionFactsCommandHandler builds a nutrition label and stores it.
type RegisterNutritionFactsCommandHandler struct {
	uowFactory NutritionUoWFactory
}

// NewRegisterNutritionFactsCommandHandler creates the handler.
func NewRegisterNutritionFactsCommandHandler(uowFactory NutritionUoWFactory) RegisterNutritionFactsCommandHandler {
	return RegisterNutritionFactsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds Facts from the command, calling the optional setters only for
// supplied values, and persists them under the command's label ID.
func (h *RegisterNutritionFactsCommandHandler) Handle(ctx context.Context, cmd RegisterNutritionFactsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	builder := nutrition.NewBuilder(cmd.ServingSize(), cmd.Servings())
	if calories, ok := cmd.Calories(); ok {
		builder.Calories(calories)
	}
	if fat, ok := cmd.Fat(); ok {
		builder.Fat(fat)
	}
	facts := builder.Build()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NutritionRepository().Add(ctx, cmd.LabelID(), facts); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

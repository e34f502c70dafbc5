package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/serverutils"
)

// principalFrom reads the authenticated principal the API key middleware
// stored in locals. Routes registered without the middleware get an empty
// principal, which the policy denies.
func principalFrom(ctx *fiber.Ctx) entity.Principal {
	p, ok := serverutils.GetPrincipal(ctx)
	if !ok || p == nil {
		return entity.Principal{}
	}
	return *p
}

func parseIDParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewValidation("id must be a uuid")
	}
	return id, nil
}

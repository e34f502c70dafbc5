package serverutils

import (
	"strings"

	"workflow-data-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds violations into a
// single validation error, so malformed input never reaches the store.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidation(err.Error())
	}

	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.Field()+" failed on '"+v.Tag()+"'")
	}
	return apperror.NewValidation("invalid request: " + strings.Join(parts, "; "))
}

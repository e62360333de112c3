package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weathertodo.app/internal/core/todo"
	"weathertodo.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the todo enum and date validators to gin's binding
// engine. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		for tag, fn := range map[string]validator.Func{
			"todo_status":   validateStatus,
			"todo_priority": validatePriority,
			"date_key":      validateDateKey,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

// validateStatus validates the status enum value
func validateStatus(fl validator.FieldLevel) bool {
	return todo.StatusFromString(fl.Field().String()).IsValid()
}

// validatePriority validates the priority enum value
func validatePriority(fl validator.FieldLevel) bool {
	return todo.PriorityFromString(fl.Field().String()).IsValid()
}

func validateDateKey(fl validator.FieldLevel) bool {
	return validation.IsValidDateKey(fl.Field().String())
}

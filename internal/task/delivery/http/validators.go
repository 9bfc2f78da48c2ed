package http

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"deadline-sync/internal/model"
	"deadline-sync/pkg/log"
)

var registerOnce sync.Once

// registerValidators adds the task enum tags to gin's validator engine.
func registerValidators(l log.Logger) {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			l.Warnf(context.Background(), "task/delivery/http.registerValidators: unexpected validator engine")
			return
		}
		if err := v.RegisterValidation("task_status", validateTaskStatus); err != nil {
			l.Errorf(context.Background(), "task/delivery/http.registerValidators task_status: %v", err)
		}
		if err := v.RegisterValidation("task_priority", validateTaskPriority); err != nil {
			l.Errorf(context.Background(), "task/delivery/http.registerValidators task_priority: %v", err)
		}
	})
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	_, err := model.ParseTaskStatus(fl.Field().String())
	return err == nil
}

func validateTaskPriority(fl validator.FieldLevel) bool {
	_, err := model.ParseTaskPriority(fl.Field().String())
	return err == nil
}

package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container копит мидлвари для очередного обработчика
type Container struct {
	huma.Middlewares
}

func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add добавляет мидлвари, nil пропускаются
func (mc *Container) Add(middlewares ...func(ctx huma.Context, next func(huma.Context))) {
	for _, mw := range middlewares {
		if mw != nil {
			mc.Middlewares = append(mc.Middlewares, mw)
		}
	}
}

// GetAllAndClear возвращает все мидлвари и очищает внутренний список
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = nil
	return result
}

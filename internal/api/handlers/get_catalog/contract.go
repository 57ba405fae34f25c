package get_catalog

import (
	"context"

	getCatalog "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_catalog"
)

type GetCatalogUseCase interface {
	Execute(ctx context.Context, req *getCatalog.Request) (*getCatalog.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

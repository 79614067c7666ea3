package get_chain_availability

import (
	"context"

	getChainAvailability "github.com/m04kA/SMC-ChainBookingService/internal/usecase/get_chain_availability"
)

type GetChainAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getChainAvailability.Request) (*getChainAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

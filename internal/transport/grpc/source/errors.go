package source

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/source-service/internal/app/source/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	// Map specific domain errors to gRPC codes
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		return status.Error(codes.NotFound, "source not found")

	case errors.Is(err, domain.ErrPriceNotFound):
		return status.Error(codes.NotFound, "no prices recorded for this sku")

	case errors.Is(err, domain.ErrNameRequired):
		return status.Error(codes.InvalidArgument, "source name cannot be empty")

	case errors.Is(err, domain.ErrCreatedByRequired):
		return status.Error(codes.InvalidArgument, "created_by cannot be empty")

	case errors.Is(err, domain.ErrIDConflict):
		return status.Error(codes.Internal, "internal server error")

	case errors.Is(err, domain.ErrStoreInconsistent):
		return status.Error(codes.Internal, "internal server error")

	default:
		// Unknown error - return Internal
		return status.Error(codes.Internal, "internal server error")
	}
}

package source

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/source-service/proto/source/v1"
)

// validateCreateSourceRequest validates the CreateSource request.
func validateCreateSourceRequest(req *pb.CreateSourceRequest) error {
	if req.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	if req.CreatedBy == "" {
		return status.Error(codes.InvalidArgument, "created_by is required")
	}
	return nil
}

// validateUpdateSourceRequest validates the UpdateSource request.
func validateUpdateSourceRequest(req *pb.UpdateSourceRequest) error {
	if req.SourceId == 0 {
		return status.Error(codes.InvalidArgument, "source_id is required")
	}
	if req.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	return nil
}

// validateAddPriceRequest validates the AddPrice request.
func validateAddPriceRequest(req *pb.AddPriceRequest) error {
	if req.SourceId == 0 {
		return status.Error(codes.InvalidArgument, "source_id is required")
	}
	if req.CreatedBy == "" {
		return status.Error(codes.InvalidArgument, "created_by is required")
	}
	return nil
}

// validateSourceID rejects the zero id, which no record can carry.
func validateSourceID(id uint32) error {
	if id == 0 {
		return status.Error(codes.InvalidArgument, "source_id is required")
	}
	return nil
}

package source

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/usecases/add_price"
	pb "github.com/light-bringer/source-service/proto/source/v1"
)

// dtoToProtoSource converts a SourceDTO to proto Source.
func dtoToProtoSource(dto *contracts.SourceDTO) *pb.Source {
	return &pb.Source{
		Id:        dto.ID,
		Name:      dto.Name,
		Address:   dto.Address,
		Email:     dto.Email,
		Phone:     dto.Phone,
		CreatedBy: dto.CreatedBy,
		CreatedAt: timestamppb.New(dto.CreatedAt),
	}
}

// dtoToProtoPriceEntry converts a PriceEntryDTO to proto PriceEntry.
func dtoToProtoPriceEntry(dto contracts.PriceEntryDTO) *pb.PriceEntry {
	return &pb.PriceEntry{
		NetPrice:  dto.NetPrice,
		Comment:   dto.Comment,
		CreatedBy: dto.CreatedBy,
		CreatedAt: timestamppb.New(dto.CreatedAt),
	}
}

// dtoToProtoPriceInfo converts a PriceInfoDTO to proto PriceInfo.
func dtoToProtoPriceInfo(dto contracts.PriceInfoDTO) *pb.PriceInfo {
	return &pb.PriceInfo{
		SourceId: dto.SourceID,
		Sku:      dto.SKU,
		Price:    dtoToProtoPriceEntry(dto.Price),
	}
}

// addPriceResultToProto converts an add price result to proto AddPriceReply.
func addPriceResultToProto(result *add_price.Result) *pb.AddPriceReply {
	history := make([]*pb.PriceEntry, 0, len(result.History))
	for _, entry := range result.History {
		history = append(history, dtoToProtoPriceEntry(entry))
	}
	return &pb.AddPriceReply{
		SourceId: result.SourceID,
		Sku:      result.SKU,
		History:  history,
	}
}

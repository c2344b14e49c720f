package source

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/light-bringer/source-service/internal/app/source/contracts"
	"github.com/light-bringer/source-service/internal/app/source/queries/get_source"
	"github.com/light-bringer/source-service/internal/app/source/queries/latest_prices"
	"github.com/light-bringer/source-service/internal/app/source/queries/list_sources"
	"github.com/light-bringer/source-service/internal/app/source/queries/price_across_sources"
	"github.com/light-bringer/source-service/internal/app/source/queries/price_history"
	"github.com/light-bringer/source-service/internal/app/source/usecases/add_price"
	"github.com/light-bringer/source-service/internal/app/source/usecases/create_source"
	"github.com/light-bringer/source-service/internal/app/source/usecases/update_source"
	"github.com/light-bringer/source-service/internal/pkg/logging"
	"github.com/light-bringer/source-service/internal/pkg/stream"
	pb "github.com/light-bringer/source-service/proto/source/v1"
)

// Handler implements the gRPC SourceService interface.
// It's a thin coordinator that delegates to use cases and queries; every
// multi-result operation computes its list first and then streams it
// without holding the store lock.
type Handler struct {
	pb.UnimplementedSourceServiceServer

	// Commands
	createSource *create_source.Interactor
	updateSource *update_source.Interactor
	addPrice     *add_price.Interactor

	// Queries
	getSource          *get_source.Query
	listSources        *list_sources.Query
	latestPrices       *latest_prices.Query
	priceAcrossSources *price_across_sources.Query
	priceHistory       *price_history.Query

	logger *slog.Logger
}

// NewHandler creates a new gRPC source handler.
func NewHandler(
	createSource *create_source.Interactor,
	updateSource *update_source.Interactor,
	addPrice *add_price.Interactor,
	getSource *get_source.Query,
	listSources *list_sources.Query,
	latestPrices *latest_prices.Query,
	priceAcrossSources *price_across_sources.Query,
	priceHistory *price_history.Query,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		createSource:       createSource,
		updateSource:       updateSource,
		addPrice:           addPrice,
		getSource:          getSource,
		listSources:        listSources,
		latestPrices:       latestPrices,
		priceAcrossSources: priceAcrossSources,
		priceHistory:       priceHistory,
		logger:             logging.Default(logger).With("component", "source_handler"),
	}
}

// CreateSource creates a new source record.
func (h *Handler) CreateSource(ctx context.Context, req *pb.CreateSourceRequest) (*pb.Source, error) {
	// 1. Validate proto request
	if err := validateCreateSourceRequest(req); err != nil {
		return nil, err
	}

	// 2. Map proto → application request
	appReq := &create_source.Request{
		Name:      req.Name,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedBy: req.CreatedBy,
	}

	// 3. Call usecase
	dto, err := h.createSource.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	// 4. Return the stored record
	return dtoToProtoSource(dto), nil
}

// GetSource retrieves a source by id.
func (h *Handler) GetSource(ctx context.Context, req *pb.GetSourceRequest) (*pb.Source, error) {
	if err := validateSourceID(req.SourceId); err != nil {
		return nil, err
	}

	dto, err := h.getSource.Execute(ctx, &get_source.Request{SourceID: req.SourceId})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return dtoToProtoSource(dto), nil
}

// UpdateSource wholesale-replaces a source's contact data.
func (h *Handler) UpdateSource(ctx context.Context, req *pb.UpdateSourceRequest) (*pb.Source, error) {
	if err := validateUpdateSourceRequest(req); err != nil {
		return nil, err
	}

	appReq := &update_source.Request{
		SourceID: req.SourceId,
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	dto, err := h.updateSource.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return dtoToProtoSource(dto), nil
}

// ListSources streams every source record in store order.
func (h *Handler) ListSources(req *pb.ListSourcesRequest, srv grpc.ServerStreamingServer[pb.Source]) error {
	// 1. Compute the full result inside the store's lock window
	dtos, err := h.listSources.Execute(srv.Context())
	if err != nil {
		return mapDomainErrorToGRPC(err)
	}

	// 2. Deliver lock-free
	return h.finishDelivery(stream.Deliver(srv.Context(), dtos, func(dto *contracts.SourceDTO) error {
		return srv.Send(dtoToProtoSource(dto))
	}, h.logger))
}

// GetLatestPrices streams the latest quote for every SKU on one source.
func (h *Handler) GetLatestPrices(req *pb.GetLatestPricesRequest, srv grpc.ServerStreamingServer[pb.PriceInfo]) error {
	if err := validateSourceID(req.SourceId); err != nil {
		return err
	}

	infos, err := h.latestPrices.Execute(srv.Context(), &latest_prices.Request{SourceID: req.SourceId})
	if err != nil {
		return mapDomainErrorToGRPC(err)
	}

	return h.finishDelivery(stream.Deliver(srv.Context(), infos, func(info contracts.PriceInfoDTO) error {
		return srv.Send(dtoToProtoPriceInfo(info))
	}, h.logger))
}

// AddPrice appends a quote and returns the pair's full history.
func (h *Handler) AddPrice(ctx context.Context, req *pb.AddPriceRequest) (*pb.AddPriceReply, error) {
	if err := validateAddPriceRequest(req); err != nil {
		return nil, err
	}

	result, err := h.addPrice.Execute(ctx, &add_price.Request{
		SourceID:  req.SourceId,
		SKU:       req.Sku,
		NetPrice:  req.NetPrice,
		Comment:   req.Comment,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return addPriceResultToProto(result), nil
}

// GetPriceAcrossSources streams the latest quote for one SKU on every
// source that has quoted it.
func (h *Handler) GetPriceAcrossSources(req *pb.GetPriceAcrossSourcesRequest, srv grpc.ServerStreamingServer[pb.PriceInfo]) error {
	infos, err := h.priceAcrossSources.Execute(srv.Context(), &price_across_sources.Request{SKU: req.Sku})
	if err != nil {
		return mapDomainErrorToGRPC(err)
	}

	return h.finishDelivery(stream.Deliver(srv.Context(), infos, func(info contracts.PriceInfoDTO) error {
		return srv.Send(dtoToProtoPriceInfo(info))
	}, h.logger))
}

// GetPriceHistory streams the full quote history of one (source, sku) pair.
func (h *Handler) GetPriceHistory(req *pb.GetPriceHistoryRequest, srv grpc.ServerStreamingServer[pb.PriceEntry]) error {
	if err := validateSourceID(req.SourceId); err != nil {
		return err
	}

	history, err := h.priceHistory.Execute(srv.Context(), &price_history.Request{
		SourceID: req.SourceId,
		SKU:      req.Sku,
	})
	if err != nil {
		return mapDomainErrorToGRPC(err)
	}

	return h.finishDelivery(stream.Deliver(srv.Context(), history, func(entry contracts.PriceEntryDTO) error {
		return srv.Send(dtoToProtoPriceEntry(entry))
	}, h.logger))
}

// finishDelivery swallows delivery aborts: a consumer that went away is
// not a server fault and must only end its own stream.
func (h *Handler) finishDelivery(err error) error {
	if errors.Is(err, stream.ErrDeliveryAborted) {
		return nil
	}
	return err
}

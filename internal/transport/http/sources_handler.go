package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	pb "github.com/light-bringer/source-service/proto/source/v1"
)

// SourcesHandler handles HTTP requests for the source listing.
type SourcesHandler struct {
	sourceService pb.SourceServiceClient
}

// NewSourcesHandler creates a new HTTP sources handler.
func NewSourcesHandler(sourceService pb.SourceServiceClient) *SourcesHandler {
	return &SourcesHandler{
		sourceService: sourceService,
	}
}

// Source represents a supplier record in the HTTP response.
type Source struct {
	ID        uint32   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Email     []string `json:"email,omitempty"`
	Phone     []string `json:"phone,omitempty"`
	CreatedBy string   `json:"created_by"`
	CreatedAt string   `json:"created_at"`
}

// ListSourcesResponse represents the HTTP response for listing sources.
type ListSourcesResponse struct {
	Sources    []Source `json:"sources"`
	TotalCount int      `json:"total_count"`
}

// ServeHTTP handles GET /api/v1/sources requests by draining the gRPC
// listing stream into one JSON document.
func (h *SourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stream, err := h.sourceService.ListSources(r.Context(), &pb.ListSourcesRequest{})
	if err != nil {
		http.Error(w, "Failed to fetch sources: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sources := make([]Source, 0)
	for {
		protoSource, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			http.Error(w, "Failed to fetch sources: "+err.Error(), http.StatusInternalServerError)
			return
		}

		source := Source{
			ID:        protoSource.Id,
			Name:      protoSource.Name,
			Address:   protoSource.Address,
			Email:     protoSource.Email,
			Phone:     protoSource.Phone,
			CreatedBy: protoSource.CreatedBy,
		}
		if protoSource.CreatedAt != nil {
			source.CreatedAt = protoSource.CreatedAt.AsTime().Format(time.RFC3339)
		}
		sources = append(sources, source)
	}

	response := ListSourcesResponse{
		Sources:    sources,
		TotalCount: len(sources),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

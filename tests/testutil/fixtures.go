package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/light-bringer/source-service/proto/source/v1"
)

// CreateTestSource creates a source through the public API and returns its id.
func CreateTestSource(t *testing.T, client pb.SourceServiceClient, name string) uint32 {
	t.Helper()

	resp, err := client.CreateSource(context.Background(), &pb.CreateSourceRequest{
		Name:      name,
		Address:   "1 Test St",
		Email:     []string{"test@example.com"},
		Phone:     []string{"555-0100"},
		CreatedBy: "fixtures",
	})
	require.NoError(t, err, "failed to create test source")

	return resp.Id
}

// AddTestPrice records one quote for a (source, sku) pair.
func AddTestPrice(t *testing.T, client pb.SourceServiceClient, sourceID, sku, netPrice uint32) {
	t.Helper()

	_, err := client.AddPrice(context.Background(), &pb.AddPriceRequest{
		SourceId:  sourceID,
		Sku:       sku,
		NetPrice:  netPrice,
		CreatedBy: "fixtures",
	})
	require.NoError(t, err, "failed to add test price")
}

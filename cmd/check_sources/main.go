// Command check_sources is a manual smoke check: it connects to a running
// server, lists every source, and prints the latest prices of each one.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/light-bringer/source-service/proto/source/v1"
)

func main() {
	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = "localhost:50062"
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewSourceServiceClient(conn)
	ctx := context.Background()

	stream, err := client.ListSources(ctx, &pb.ListSourcesRequest{})
	if err != nil {
		log.Fatalf("Failed to list sources: %v", err)
	}

	count := 0
	for {
		source, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("Failed to receive source: %v", err)
		}
		count++

		fmt.Printf("%d. %s\n", source.Id, source.Name)
		fmt.Printf("   Created by: %s at %s\n", source.CreatedBy, source.CreatedAt.AsTime().Format("2006-01-02 15:04:05"))
		if source.Address != "" {
			fmt.Printf("   Address: %s\n", source.Address)
		}

		prices, err := client.GetLatestPrices(ctx, &pb.GetLatestPricesRequest{SourceId: source.Id})
		if err != nil {
			log.Fatalf("Failed to fetch prices for source %d: %v", source.Id, err)
		}
		for {
			info, err := prices.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				log.Fatalf("Failed to receive price: %v", err)
			}
			fmt.Printf("   SKU %d: %d (by %s)\n", info.Sku, info.Price.NetPrice, info.Price.CreatedBy)
		}
		fmt.Println()
	}

	fmt.Printf("Found %d sources\n", count)
}

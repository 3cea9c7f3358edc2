// Package grpcclient adapts the model-serving sidecar's gRPC API to the
// inference.ModelClient interface.
package grpcclient

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/proofgate/internal/inference"
	"github.com/example/proofgate/internal/logging"
	proto "github.com/example/proofgate/proto"
)

var errServerNotReady = errors.New("model server reported not ready")

// DialModelServer returns a ready-to-use client for the model server.
func DialModelServer(ctx context.Context, addr string, logger *zap.Logger) (inference.ModelClient, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_model_server", "", err)
		logger.Error("failed to dial model server", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewModelRuntimeClient(conn)
	return &grpcModelClient{client: client, logger: logger}, conn, nil
}

type grpcModelClient struct {
	client proto.ModelRuntimeClient
	logger *zap.Logger
}

func (g *grpcModelClient) LoadModel(ctx context.Context, model string) error {
	resp, err := g.client.LoadModel(ctx, &proto.LoadModelRequest{Model: model})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.load_model", model, err)
		g.logger.Error("model load call failed", zap.Error(wrapped), zap.String("model", model))
		return wrapped
	}
	if !resp.GetReady() {
		g.logger.Error("model server reported not ready", zap.String("model", model))
		return logging.NewOperationError("grpcclient.load_model", model, errServerNotReady)
	}
	return nil
}

func (g *grpcModelClient) Classify(ctx context.Context, image []byte) ([]inference.Classification, error) {
	resp, err := g.client.Classify(ctx, &proto.ClassifyRequest{ImageData: image})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.classify", "", err)
		g.logger.Error("classify call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	classifications := make([]inference.Classification, 0, len(resp.GetClassifications()))
	for _, c := range resp.GetClassifications() {
		classifications = append(classifications, inference.Classification{
			Label:       c.GetLabel(),
			Probability: float64(c.GetProbability()),
		})
	}
	return classifications, nil
}

func (g *grpcModelClient) Detect(ctx context.Context, image []byte) ([]inference.Detection, error) {
	resp, err := g.client.Detect(ctx, &proto.DetectRequest{ImageData: image})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.detect", "", err)
		g.logger.Error("detect call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	detections := make([]inference.Detection, 0, len(resp.GetDetections()))
	for _, d := range resp.GetDetections() {
		detections = append(detections, inference.Detection{
			ClassName: d.GetClassName(),
			Score:     float64(d.GetScore()),
		})
	}
	return detections, nil
}

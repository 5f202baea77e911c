package grpcserver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "vega/api/pb"
	"vega/domain/ledger"
	"vega/domain/match"
	"vega/domain/orderbook"
	"vega/service"
)

// Server adapts OrderService to gRPC.
type Server struct {
	pb.UnimplementedMarketServiceServer
	svc *service.OrderService
	log *zap.Logger
}

func NewServer(svc *service.OrderService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) PlaceOrder(
	ctx context.Context,
	req *pb.PlaceOrderRequest,
) (*pb.PlaceOrderResponse, error) {
	trader, err := uuid.Parse(req.Trader)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "trader: %v", err)
	}
	side := toSide(req.Side)

	id, err := s.svc.PlaceOrder(ctx, trader, side, req.Price, req.Qty)
	if err != nil && !errors.Is(err, match.ErrSettlementFailed) {
		return nil, toStatus(err)
	}
	// A settlement failure halted matching, but the order itself was
	// accepted and rests in the book. The caller still gets its id.

	s.log.Info("place",
		zap.Uint64("order", id),
		zap.String("side", side.String()),
		zap.Int64("price", req.Price),
		zap.Int64("qty", req.Qty))

	return &pb.PlaceOrderResponse{OrderId: id}, nil
}

func (s *Server) CancelOrder(
	ctx context.Context,
	req *pb.CancelOrderRequest,
) (*pb.CancelOrderResponse, error) {
	trader, err := uuid.Parse(req.Trader)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "trader: %v", err)
	}

	if err := s.svc.CancelOrder(ctx, req.OrderId, trader); err != nil {
		return nil, toStatus(err)
	}

	s.log.Info("cancel", zap.Uint64("order", req.OrderId))
	return &pb.CancelOrderResponse{}, nil
}

// -------------------- Queries --------------------

func (s *Server) ActiveOrders(
	ctx context.Context,
	req *pb.ActiveOrdersRequest,
) (*pb.ActiveOrdersResponse, error) {
	ids := s.svc.ActiveOrders(toSide(req.Side))
	return &pb.ActiveOrdersResponse{OrderIds: ids}, nil
}

func (s *Server) Depth(
	ctx context.Context,
	req *pb.DepthRequest,
) (*pb.DepthResponse, error) {
	orders := s.svc.Depth()

	resp := &pb.DepthResponse{
		Orders: make([]*pb.OrderEntry, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, &pb.OrderEntry{
			Id:     o.ID,
			Trader: o.Trader.String(),
			Side:   fromSide(o.Side),
			Price:  o.Price,
			Qty:    o.Qty,
			Filled: o.Filled,
			Status: o.Status.String(),
		})
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_SIDE_ASK {
		return orderbook.Ask
	}
	return orderbook.Bid
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Ask {
		return pb.Side_SIDE_ASK
	}
	return pb.Side_SIDE_BID
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ledger.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ledger.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ledger.ErrAlreadyInactive),
		errors.Is(err, match.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Package grpcserver adapts the engine facade to gRPC. The engine
// is single-writer; a mutex serializes every call into it.
package grpcserver

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"mimir/api/pb"
	"mimir/engine"
)

type Server struct {
	pb.UnimplementedEngineServer

	mu  sync.Mutex
	eng *engine.Engine
	log *zap.Logger
}

func NewServer(eng *engine.Engine, log *zap.Logger) *Server {
	return &Server{eng: eng, log: log}
}

func (s *Server) Apply(ctx context.Context, req *pb.ApplyRequest) (*pb.ApplyResponse, error) {
	s.mu.Lock()
	lines := s.eng.Apply(req.GetLine())
	s.mu.Unlock()

	s.log.Debug("apply",
		zap.String("line", req.GetLine()),
		zap.Int("responses", len(lines)),
	)
	return &pb.ApplyResponse{Lines: lines}, nil
}

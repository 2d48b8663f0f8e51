package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/usecase"
)

const (
	AuthServiceName = "kelimo.v1.AuthService"

	AuthServiceBeginMobileLoginProcedure    = "/" + AuthServiceName + "/BeginMobileLogin"
	AuthServiceCompleteMobileLoginProcedure = "/" + AuthServiceName + "/CompleteMobileLogin"
)

// AuthServiceServer hands a mobile client's return URL across the browser login round trip.
type AuthServiceServer struct {
	uc usecase.LoginRedirectUsecase
}

func NewAuthServiceServer(uc usecase.LoginRedirectUsecase) *AuthServiceServer {
	return &AuthServiceServer{uc: uc}
}

func (s *AuthServiceServer) BeginMobileLogin(ctx context.Context, req *connect.Request[mapping.BeginMobileLoginRequest]) (*connect.Response[mapping.BeginMobileLoginResponse], error) {
	state, err := s.uc.Begin(ctx, req.Msg.ReturnURL)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&mapping.BeginMobileLoginResponse{State: state}), nil
}

func (s *AuthServiceServer) CompleteMobileLogin(ctx context.Context, req *connect.Request[mapping.CompleteMobileLoginRequest]) (*connect.Response[mapping.CompleteMobileLoginResponse], error) {
	redirect, err := s.uc.Complete(ctx, req.Msg.State, req.Msg.Token)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&mapping.CompleteMobileLoginResponse{RedirectURL: redirect}), nil
}

func (s *AuthServiceServer) handlers(opts ...connect.HandlerOption) map[string]*connect.Handler {
	return map[string]*connect.Handler{
		AuthServiceBeginMobileLoginProcedure:    connect.NewUnaryHandler(AuthServiceBeginMobileLoginProcedure, s.BeginMobileLogin, opts...),
		AuthServiceCompleteMobileLoginProcedure: connect.NewUnaryHandler(AuthServiceCompleteMobileLoginProcedure, s.CompleteMobileLogin, opts...),
	}
}

// PublicProcedures need no bearer token.
var PublicProcedures = []string{
	AuthServiceBeginMobileLoginProcedure,
	AuthServiceCompleteMobileLoginProcedure,
}

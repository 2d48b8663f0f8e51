package connectrpc

import (
	"net/http"

	"connectrpc.com/connect"
)

// Services groups the Connect servers mounted on the HTTP mux.
type Services struct {
	Word     *WordServiceServer
	Progress *ProgressServiceServer
	Practice *PracticeServiceServer
	Auth     *AuthServiceServer
}

// NewHandler mounts every procedure. The JSON codec is always installed; opts
// typically carry the logging, auth and validation interceptors in that order.
func NewHandler(svc Services, opts ...connect.HandlerOption) http.Handler {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	for _, group := range []map[string]*connect.Handler{
		svc.Word.handlers(opts...),
		svc.Progress.handlers(opts...),
		svc.Practice.handlers(opts...),
		svc.Auth.handlers(opts...),
	} {
		for procedure, h := range group {
			mux.Handle(procedure, h)
		}
	}
	return mux
}

// ClientOptions configures a Connect client to talk to NewHandler.
func ClientOptions() []connect.ClientOption {
	return []connect.ClientOption{connect.WithCodec(jsonCodec{})}
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/kelimo/internal/infrastructure/config"
)

// Logger logs one line per unary call. Client faults log at warn, server faults at error.
func Logger(logger *logrus.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			var code connect.Code
			if err != nil {
				code = connect.CodeOf(err)
			}
			fields := requestFields(req, code, time.Since(start))
			for k, v := range responseFields(resp) {
				fields[k] = v
			}
			entry := logger.WithContext(ctx).WithFields(fields)
			if err != nil {
				entry = entry.WithError(err)
			}
			entry.Log(determineLogLevel(code, err), "request completed")

			return resp, err
		}
	}
}

func determineLogLevel(code connect.Code, err error) logrus.Level {
	if err == nil {
		return logrus.InfoLevel
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func requestFields(req connect.AnyRequest, code connect.Code, duration time.Duration) logrus.Fields {
	status := "ok"
	if code != 0 {
		status = code.String()
	}
	fields := logrus.Fields{
		"procedure": req.Spec().Procedure,
		"status":    status,
		"duration":  duration.String(),
	}

	setField(fields, "http_method", req.HTTPMethod())
	peer := req.Peer()
	setField(fields, "peer_addr", peer.Addr)
	setField(fields, "protocol", peer.Protocol)

	header := req.Header()
	setField(fields, "user_agent", header.Get("User-Agent"))
	setField(fields, "request_id", header.Get("X-Request-Id"))
	setField(fields, "client_ip", firstForwardedFor(header))
	setField(fields, "content_type", header.Get("Content-Type"))
	if cl := contentLength(header); cl >= 0 {
		fields["request_bytes"] = cl
	}
	return fields
}

func responseFields(resp connect.AnyResponse) logrus.Fields {
	fields := logrus.Fields{}
	if resp == nil {
		return fields
	}
	if cl := contentLength(resp.Header()); cl >= 0 {
		fields["response_bytes"] = cl
	}
	return fields
}

func setField(fields logrus.Fields, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func firstForwardedFor(header http.Header) string {
	for _, part := range strings.Split(header.Get("X-Forwarded-For"), ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}

func contentLength(header http.Header) int {
	if cl := header.Get("Content-Length"); cl != "" {
		if parsed, err := strconv.Atoi(cl); err == nil {
			return parsed
		}
	}
	return -1
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}

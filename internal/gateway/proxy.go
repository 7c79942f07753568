package gateway

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"shareit/internal/middleware"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

const defaultTimeout = 10 * time.Second

func (g *Gateway) newProxy(target *url.URL, timeout time.Duration) *httputil.ReverseProxy {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
			if rid, ok := r.In.Context().Value(log.RequestIDKey).(string); ok {
				r.Out.Header.Set(middleware.RequestIDHeader, rid)
			}
		},
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
			ResponseHeaderTimeout: timeout,
			MaxIdleConnsPerHost:   32,
			IdleConnTimeout:       90 * time.Second,
		},
		ModifyResponse: func(resp *http.Response) error {
			// The gateway sets these itself.
			resp.Header.Del(middleware.RequestIDHeader)
			for k := range resp.Header {
				if strings.HasPrefix(k, "Access-Control-") {
					resp.Header.Del(k)
				}
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			g.l.Errorf(r.Context(), "gateway.proxy %s %s: %v", r.Method, r.URL.Path, err)
			writeError(w, errUpstream.Code, errUpstream.Message)
		},
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response.Resp{ErrorCode: code, Message: msg})
}

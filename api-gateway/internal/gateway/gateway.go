package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	DashboardSvcURL string
	FoodsAPIURL     string
	StaticDir       string
}

// Upstream is a named backend the gateway forwards to.
type Upstream struct {
	Name    string
	BaseURL string
}

// Health reports the gateway status and where each upstream points.
type Health struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Upstreams map[string]string `json:"upstreams"`
}

// Connection-level headers that must not cross the proxy.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type Gateway struct {
	config    Config
	client    HTTPClient
	dashboard Upstream
	foods     Upstream
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	if config.StaticDir == "" {
		config.StaticDir = "./frontend"
	}
	return &Gateway{
		config:    config,
		client:    client,
		dashboard: Upstream{Name: "dashboard-svc", BaseURL: config.DashboardSvcURL},
		foods:     Upstream{Name: "foods-api", BaseURL: config.FoodsAPIURL},
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{
		Status:  "healthy",
		Service: "api-gateway",
		Upstreams: map[string]string{
			g.dashboard.Name: g.dashboard.BaseURL,
			g.foods.Name:     g.foods.BaseURL,
		},
	})
}

// ProxyRequest forwards r to the same path and query on up and streams the
// answer back.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, up Upstream) {
	if up.BaseURL == "" {
		log.Printf("ERROR: No URL configured for %s", up.Name)
		http.Error(w, up.Name+" is not configured", http.StatusServiceUnavailable)
		return
	}

	target := upstreamURL(up.BaseURL, r)
	log.Printf("PROXY: %s %s -> %s", r.Method, r.URL.RequestURI(), target)

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to build %s request: %v", up.Name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	copyHeader(req.Header, r.Header)
	setForwarded(req.Header, r)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: %s unreachable: %v", up.Name, err)
		http.Error(w, up.Name+" unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeader(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to stream %s response: %v", up.Name, err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	switch {
	case path == "/api/dashboard" || strings.HasPrefix(path, "/api/dashboard/"):
		g.ProxyRequest(w, r, g.dashboard)
	case path == "/foods" || strings.HasPrefix(path, "/foods/"):
		// Menu-card QR links open /foods/<id> in a browser.
		if strings.HasPrefix(r.Header.Get("Accept"), "text/html") {
			g.serveIndex(w, r)
			return
		}
		g.ProxyRequest(w, r, g.foods)
	case strings.HasPrefix(path, "/api/"):
		log.Printf("ROUTE: no upstream for %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
	default:
		g.serveIndex(w, r)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.StaticDir))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func (g *Gateway) serveIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, g.config.StaticDir+"/index.html")
}

func upstreamURL(base string, r *http.Request) string {
	target := strings.TrimRight(base, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return target
}

func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		dst[k] = append([]string(nil), vv...)
	}
	for _, h := range hopHeaders {
		dst.Del(h)
	}
}

func setForwarded(h http.Header, r *http.Request) {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if prior := h.Get("X-Forwarded-For"); prior != "" {
			ip = prior + ", " + ip
		}
		h.Set("X-Forwarded-For", ip)
	}
	h.Set("X-Forwarded-Host", r.Host)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jallichakravarthi/mern-watchlist/domain"
)

// UnknownLocation is returned whenever resolution fails for any reason.
const UnknownLocation = "Unknown Location"

// IPAPIServiceImpl implements domain.GeoResolver against the ip-api.com
// JSON endpoint. Resolution is best effort with a short timeout; it is
// never allowed to fail or block the operation that requested it.
type IPAPIServiceImpl struct {
	endpoint string
	client   *http.Client
}

// NewIPAPIService creates a new ip-api.com geolocation resolver
func NewIPAPIService(endpoint string, timeout time.Duration) domain.GeoResolver {
	return &IPAPIServiceImpl{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type ipapiResponse struct {
	Status  string `json:"status"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Resolve implements domain.GeoResolver
func (g *IPAPIServiceImpl) Resolve(ctx context.Context, addr string) string {
	// Strip a port if the caller handed us host:port.
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/"+addr, nil)
	if err != nil {
		return UnknownLocation
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return UnknownLocation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UnknownLocation
	}

	var data ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return UnknownLocation
	}
	if data.Status != "success" || data.City == "" || data.Country == "" {
		return UnknownLocation
	}

	return fmt.Sprintf("%s, %s", data.City, data.Country)
}

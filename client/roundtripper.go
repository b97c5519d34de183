package client

import (
	"net/http"

	"github.com/askmilo/askmilo-cli/idgen"
)

const (
	HeaderVersion   = "X-Milo-Version"
	HeaderRequestID = "X-Request-ID"
)

// MiloRoundTripper stamps the client version and a request id on every request.
type MiloRoundTripper struct {
	version string
	base    http.RoundTripper
}

func NewRoundTripper(version string, base http.RoundTripper) *MiloRoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &MiloRoundTripper{version: version, base: base}
}

func (m *MiloRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to ensure thread safety
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", "askmilo-cli/"+m.version)
	clonedReq.Header.Set(HeaderVersion, m.version)
	if clonedReq.Header.Get(HeaderRequestID) == "" {
		clonedReq.Header.Set(HeaderRequestID, idgen.New(idgen.RequestPrefix))
	}

	return m.base.RoundTrip(clonedReq)
}

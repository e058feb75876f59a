package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Classification of a single probe result.
type Classification string

const (
	Vulnerable    Classification = "vulnerable"
	Informational Classification = "informational"
	Safe          Classification = "safe"
)

// StatusNoResponse is the sentinel recorded when a request fails outright
// (connection refused, timeout). Distinct from any real HTTP status.
const StatusNoResponse = 0

type expander interface {
	Expand(entry string) ([]string, error)
}

// Scanner runs the probe sequence against one target URL. Probes execute
// strictly one after another; each issues one request at a time.
type Scanner struct {
	cfg      Config
	expander expander
	results  *ResultWriter
	log      zerolog.Logger
}

func NewScanner(
	cfg Config,
	expander expander,
	results *ResultWriter,
	log zerolog.Logger,
) *Scanner {
	return &Scanner{
		cfg:      cfg,
		expander: expander,
		results:  results,
		log:      log,
	}
}

// Run executes every probe in fixed order. Individual request failures are
// tolerated; only result-file write failures abort the scan.
func (s *Scanner) Run() error {
	s.log.Info().Str("target", s.cfg.TargetURL).Msg("starting scan")

	_, err := s.CheckCORS()
	if err != nil {
		return err
	}

	s.ProbeMethods()
	s.CheckDisclosure()

	_, err = s.DiscoverEndpoints()
	if err != nil {
		return err
	}

	s.log.Info().Msg("scan finished")

	return nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (s *Scanner) doRequest(
	method, url string,
	headers map[string]string,
	timeout time.Duration,
) (*response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("client: could not create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: error making http request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	return &response{
		status: res.StatusCode,
		header: res.Header,
		body:   body,
	}, nil
}

// probeStatus captures only the status code, mapping any request failure to
// the sentinel.
func (s *Scanner) probeStatus(method, url string, timeout time.Duration) int {
	res, err := s.doRequest(method, url, nil, timeout)
	if err != nil {
		return StatusNoResponse
	}

	return res.status
}

func (s *Scanner) timeout() time.Duration {
	return time.Duration(s.cfg.TimeoutSeconds) * time.Second
}

func (s *Scanner) discoveryTimeout() time.Duration {
	return time.Duration(s.cfg.DiscoveryTimeoutSeconds) * time.Second
}

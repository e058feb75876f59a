package app

import "net/http"

const (
	probeOrigin            = "https://evil.com"
	allowOriginHeader      = "Access-Control-Allow-Origin"
	allowCredentialsHeader = "Access-Control-Allow-Credentials"
)

// CheckCORS issues one header-only cross-origin request and classifies the
// Access-Control-Allow-Origin answer: wildcard is vulnerable (and recorded),
// any other value is informational, absence is safe. An unreachable target
// counts as a response without CORS headers.
func (s *Scanner) CheckCORS() (Classification, error) {
	headers := map[string]string{
		"Origin":                        probeOrigin,
		"Access-Control-Request-Method": http.MethodGet,
	}

	res, err := s.doRequest(http.MethodHead, s.cfg.TargetURL, headers, s.timeout())
	if err != nil {
		s.log.Debug().Err(err).Msg("cors: request failed")

		res = &response{header: http.Header{}}
	}

	if credentials := res.header.Get(allowCredentialsHeader); credentials != "" {
		s.log.Info().
			Str("allowCredentials", credentials).
			Msg("cors: credentials header present")
	}

	allowOrigin := res.header.Get(allowOriginHeader)

	switch {
	case allowOrigin == "*":
		s.log.Warn().
			Str("url", s.cfg.TargetURL).
			Msg("cors: wildcard origin allowed")

		err := s.results.AppendURL(CORSResultsFile, s.cfg.TargetURL)
		if err != nil {
			return Vulnerable, err
		}

		return Vulnerable, nil
	case allowOrigin != "":
		s.log.Info().
			Str("allowOrigin", allowOrigin).
			Msg("cors: origin restricted")

		return Informational, nil
	}

	s.log.Info().Msg("cors: no Access-Control-Allow-Origin header")

	return Safe, nil
}

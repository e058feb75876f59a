package app

import "net/http"

var probeMethodOrder = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodOptions,
	http.MethodHead,
}

// ProbeMethods issues one bodyless request per HTTP method and reports every
// method that answers with anything other than 404, 405 or no response at
// all. Returns the reported methods in probe order.
func (s *Scanner) ProbeMethods() []string {
	s.log.Info().Msg("enumerating allowed HTTP methods")

	allowed := []string{}
	for _, method := range probeMethodOrder {
		status := s.probeStatus(method, s.cfg.TargetURL, s.timeout())
		if status == StatusNoResponse ||
			status == http.StatusNotFound ||
			status == http.StatusMethodNotAllowed {
			continue
		}

		s.log.Info().
			Str("method", method).
			Int("status", status).
			Msg("method responds")

		allowed = append(allowed, method)
	}

	return allowed
}

package app

import (
	"net/http"
	"strings"
)

var disclosureKeywords = []string{
	"password",
	"secret",
	"key",
	"token",
	"database",
	"internal",
	"debug",
}

// CheckDisclosure fetches the target once and reports every sensitive keyword
// present in the response body. Matching is case-insensitive and presence
// only - no snippets, no deduplication across keywords. Returns the matched
// keywords.
func (s *Scanner) CheckDisclosure() []string {
	body := ""

	res, err := s.doRequest(http.MethodGet, s.cfg.TargetURL, nil, s.timeout())
	if err != nil {
		s.log.Debug().Err(err).Msg("disclosure: request failed")
	} else {
		body = strings.ToLower(string(res.body))
	}

	matched := []string{}
	for _, keyword := range disclosureKeywords {
		if strings.Contains(body, keyword) {
			s.log.Info().
				Str("keyword", keyword).
				Msg("sensitive keyword in response body")

			matched = append(matched, keyword)
		}
	}

	if len(matched) == 0 {
		s.log.Info().Msg("no sensitive keywords in response body")
	}

	return matched
}

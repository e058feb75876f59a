package app

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// DiscoverEndpoints probes every wordlist entry against the target base URL
// and records candidates answering with anything other than 404, 403 or no
// response. Silently skipped when no wordlist was supplied or the file is not
// readable. Returns the number of endpoints found.
func (s *Scanner) DiscoverEndpoints() (int, error) {
	if s.cfg.WordlistPath == "" {
		return 0, nil
	}

	file, err := os.Open(s.cfg.WordlistPath)
	if err != nil {
		s.log.Debug().Err(err).Msg("discovery: wordlist not readable, skipping")

		return 0, nil
	}
	defer file.Close()

	s.log.Info().
		Str("wordlist", s.cfg.WordlistPath).
		Msg("discovering endpoints")

	base := strings.TrimSuffix(s.cfg.TargetURL, "/")
	found := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		segments, err := s.expander.Expand(line)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("line", line).
				Msg("discovery: skipping malformed wordlist line")

			continue
		}

		for _, segment := range segments {
			url := base + "/" + strings.TrimPrefix(segment, "/")

			status := s.probeStatus(http.MethodGet, url, s.discoveryTimeout())
			if status == StatusNoResponse ||
				status == http.StatusNotFound ||
				status == http.StatusForbidden {
				continue
			}

			s.log.Info().
				Str("url", url).
				Int("status", status).
				Msg("endpoint found")

			err := s.results.AppendURL(EndpointResultsFile, url)
			if err != nil {
				return found, err
			}

			found++
		}
	}

	err = scanner.Err()
	if err != nil {
		return found, fmt.Errorf("reading wordlist %s: %w", s.cfg.WordlistPath, err)
	}

	s.log.Info().Int("found", found).Msg("endpoint discovery finished")

	return found, nil
}

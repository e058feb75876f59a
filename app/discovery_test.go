package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phux/apiscan/app"

	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"
)

func writeWordlist(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wordlist.txt")
	err := os.WriteFile(path, []byte(lines), 0o644)
	assert.NoError(t, err)

	return path
}

func TestScanner_DiscoverEndpoints(t *testing.T) {
	type mockedEndpoint struct {
		path   string
		status int
	}

	tests := []struct {
		name      string
		target    string
		wordlist  string
		mocked    []mockedEndpoint
		wantFound int
		wantURLs  []string
	}{
		{
			name:     "blank lines are skipped, 403 is excluded, 200 is found",
			target:   "http://api.test",
			wordlist: "admin\n\n/health\n",
			mocked: []mockedEndpoint{
				{path: "/admin", status: 403},
				{path: "/health", status: 200},
			},
			wantFound: 1,
			wantURLs:  []string{"http://api.test/health"},
		},
		{
			name:     "trailing slash on the target is stripped",
			target:   "http://api.test/",
			wordlist: "status\n",
			mocked: []mockedEndpoint{
				{path: "/status", status: 401},
			},
			wantFound: 1,
			wantURLs:  []string{"http://api.test/status"},
		},
		{
			name:     "404 is excluded",
			target:   "http://api.test",
			wordlist: "missing\n",
			mocked: []mockedEndpoint{
				{path: "/missing", status: 404},
			},
			wantFound: 0,
		},
		{
			name:     "brace patterns expand to multiple candidates",
			target:   "http://api.test",
			wordlist: "v{1-2}/status\n",
			mocked: []mockedEndpoint{
				{path: "/v1/status", status: 200},
				{path: "/v2/status", status: 404},
			},
			wantFound: 1,
			wantURLs:  []string{"http://api.test/v1/status"},
		},
		{
			name:     "malformed range only skips its line",
			target:   "http://api.test",
			wordlist: "x{3-1}\nhealth\n",
			mocked: []mockedEndpoint{
				{path: "/health", status: 200},
			},
			wantFound: 1,
			wantURLs:  []string{"http://api.test/health"},
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()

			for _, mocked := range tt.mocked {
				gock.New(tt.target).
					Get(mocked.path).
					Reply(mocked.status)
			}

			cfg := app.NewConfig(tt.target)
			cfg.WordlistPath = writeWordlist(t, tt.wordlist)
			scanner, outputDir := newTestScanner(t, cfg)

			found, err := scanner.DiscoverEndpoints()

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.True(t, gock.IsDone())

			resultFile := filepath.Join(outputDir, app.EndpointResultsFile)
			if len(tt.wantURLs) == 0 {
				assert.NoFileExists(t, resultFile)

				return
			}

			content, err := os.ReadFile(resultFile)
			assert.NoError(t, err)

			expected := ""
			for _, url := range tt.wantURLs {
				expected += url + "\n"
			}
			assert.Equal(t, expected, string(content))
		})
	}
}

func TestScanner_DiscoverEndpoints_SkipsWithoutWordlist(t *testing.T) {
	tests := []struct {
		name         string
		wordlistPath string
	}{
		{
			name:         "no wordlist supplied",
			wordlistPath: "",
		},
		{
			name:         "wordlist not readable",
			wordlistPath: "does/not/exist.txt",
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()

			cfg := app.NewConfig("http://api.test")
			cfg.WordlistPath = tt.wordlistPath
			scanner, outputDir := newTestScanner(t, cfg)

			found, err := scanner.DiscoverEndpoints()

			assert.NoError(t, err)
			assert.Zero(t, found)
			assert.NoFileExists(t, filepath.Join(outputDir, app.EndpointResultsFile))
		})
	}
}

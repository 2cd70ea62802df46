package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/platewell/labkit/internal/cache"
)

// DefaultIndexURL is the JSON API of the public Python package index
const DefaultIndexURL = "https://pypi.org/pypi"

// ErrNotFound marks a package the index does not know
var ErrNotFound = errors.New("package not found on index")

// IndexClient handles requests to the PyPI JSON API
type IndexClient struct {
	httpClient *http.Client
	cache      *cache.Cache
	baseURL    string
}

// NewIndexClient creates a new index client. An empty baseURL selects
// the public index.
func NewIndexClient(c *cache.Cache, baseURL string, timeout time.Duration) *IndexClient {
	if baseURL == "" {
		baseURL = DefaultIndexURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &IndexClient{
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Project is the slice of index metadata the tool needs
type Project struct {
	Name     string
	Version  string   // Latest release according to the index
	Releases []string // Installable versions, oldest first
}

// Has reports whether a version was published and not fully yanked
func (p *Project) Has(version string) bool {
	for _, v := range p.Releases {
		if v == version {
			return true
		}
	}
	return false
}

// projectResponse represents the JSON API document for one package
type projectResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
	Releases map[string][]struct {
		Yanked bool `json:"yanked"`
	} `json:"releases"`
}

// Project fetches index metadata for a package. The name should
// already be canonical; the index redirects the rest.
func (c *IndexClient) Project(ctx context.Context, name string) (*Project, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, name)

	var data []byte

	// Check cache first
	if c.cache != nil {
		if cached, ok := c.cache.Get(url); ok {
			data = cached
		}
	}

	// Fetch from the index if not cached
	if data == nil {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s metadata: %w", name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("index returned status %d for %s", resp.StatusCode, name)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read index response: %w", err)
		}

		// Cache the response
		if c.cache != nil {
			c.cache.Set(url, data)
		}
	}

	return parseProject(data)
}

func parseProject(data []byte) (*Project, error) {
	var resp projectResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse index response: %w", err)
	}

	p := &Project{
		Name:    resp.Info.Name,
		Version: resp.Info.Version,
	}
	for version, files := range resp.Releases {
		if !installable(files) {
			continue
		}
		p.Releases = append(p.Releases, version)
	}
	SortVersions(p.Releases)

	// Old mirrors omit info.version; fall back to the newest release.
	if p.Version == "" && len(p.Releases) > 0 {
		p.Version = p.Releases[len(p.Releases)-1]
	}

	return p, nil
}

// installable requires at least one distribution file that was not
// yanked. Releases with no files cannot be installed.
func installable(files []struct {
	Yanked bool `json:"yanked"`
}) bool {
	for _, f := range files {
		if !f.Yanked {
			return true
		}
	}
	return false
}

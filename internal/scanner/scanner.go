package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/platewell/labkit/internal/cache"
	"github.com/platewell/labkit/internal/clients"
	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/parsers"
	"github.com/platewell/labkit/requirements"
)

// Scanner orchestrates manifest discovery, linting and index checks
type Scanner struct {
	config  *models.Config
	parsers []parsers.Parser
	index   *clients.IndexClient
}

// New creates a new Scanner with the given configuration
func New(config *models.Config) (*Scanner, error) {
	var c *cache.Cache
	var err error

	if !config.NoCache {
		c, err = cache.New(config.CacheTTL)
		if err != nil {
			// Non-fatal: continue without cache
			log.Warn().Err(err).Msg("response cache unavailable, continuing without it")
			c = nil
		}
	}

	return &Scanner{
		config:  config,
		parsers: parsers.GetAllParsers(config.IncludeIndirect),
		index:   clients.NewIndexClient(c, config.IndexURL, config.Timeout),
	}, nil
}

// Scan discovers manifests under the configured paths and builds the
// full report
func (s *Scanner) Scan(ctx context.Context) (*models.Report, error) {
	// Step 1: Discover and parse dependency manifests
	report, err := s.discover()
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifests: %w", err)
	}

	// Step 2: Drop findings from rules the configuration disabled
	if len(s.config.DisabledRules) > 0 {
		kept := report.Problems[:0]
		for _, p := range report.Problems {
			if !s.config.RuleDisabled(p.Rule) {
				kept = append(kept, p)
			}
		}
		report.Problems = kept
	}

	// Stable order for reporters: by manifest, then line.
	sort.SliceStable(report.Problems, func(i, j int) bool {
		a, b := report.Problems[i], report.Problems[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Line < b.Line
	})

	// Step 3: Compare pins against the package index when asked to
	if s.config.IncludeOutdated {
		if err := s.checkOutdated(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// checkOutdated asks the package index about every distinct enabled
// PyPI pin and records the stale, unknown and unpublished ones. For
// self records it checks the opposite direction: a declared version
// that is already on the index needs a bump before release.
func (s *Scanner) checkOutdated(ctx context.Context, report *models.Report) error {
	seen := make(map[string]bool)
	var targets []models.Dependency
	for _, dep := range report.Dependencies {
		if dep.Ecosystem != models.EcosystemPyPI || dep.Disabled || dep.Version == "" {
			continue
		}
		name := requirements.CanonicalName(dep.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		targets = append(targets, dep)
	}
	if len(targets) == 0 {
		return nil
	}

	limit := s.config.MaxConcurrent
	if limit <= 0 {
		limit = 10
	}

	results := make([]*models.Outdated, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, dep := range targets {
		i, dep := i, dep
		g.Go(func() error {
			project, err := s.index.Project(ctx, requirements.CanonicalName(dep.Name))
			if errors.Is(err, clients.ErrNotFound) {
				// Unknown to the index. Fine for an unreleased package,
				// worth a report for a requirement.
				if !dep.Self {
					results[i] = &models.Outdated{Dependency: dep}
				}
				return nil
			}
			if err != nil {
				return err
			}

			published := project.Has(dep.Version)
			if dep.Self {
				if published {
					results[i] = &models.Outdated{Dependency: dep, Latest: project.Version, Published: true}
				}
				return nil
			}

			stale := project.Version != "" && clients.Newer(dep.Version, project.Version)
			if !published || stale {
				results[i] = &models.Outdated{Dependency: dep, Latest: project.Version, Published: published}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to check the package index: %w", err)
	}

	for _, r := range results {
		if r != nil {
			report.Outdated = append(report.Outdated, *r)
		}
	}
	sort.Slice(report.Outdated, func(i, j int) bool {
		return report.Outdated[i].Dependency.Name < report.Outdated[j].Dependency.Name
	})
	return nil
}

// discover walks the configured paths and parses every manifest found
func (s *Scanner) discover() (*models.Report, error) {
	report := &models.Report{}

	skip := make(map[string]bool, len(s.config.SkipDirs))
	for _, name := range s.config.SkipDirs {
		skip[name] = true
	}

	for _, path := range s.config.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat path %s: %w", path, err)
		}

		if !info.IsDir() {
			// An explicitly named file must be understood.
			claimed, err := s.parseFile(path, report)
			if err != nil {
				return nil, err
			}
			if !claimed {
				return nil, fmt.Errorf("no parser understands %s", path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				// Skip generated and vendored trees, but never the
				// directory the user asked for.
				if skip[d.Name()] && p != path {
					return filepath.SkipDir
				}
				return nil
			}

			if _, err := s.parseFile(p, report); err != nil {
				// Log but don't fail on individual file parse errors
				log.Warn().Err(err).Str("file", p).Msg("skipping unparseable manifest")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return report, nil
}

// parseFile routes one file to the first parser that claims it and
// merges the results into the report. It reports whether any parser
// claimed the file.
func (s *Scanner) parseFile(path string, report *models.Report) (bool, error) {
	filename := filepath.Base(path)

	for _, parser := range s.parsers {
		if !parser.CanParse(filename) {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return true, err
		}

		deps, problems, err := parser.Parse(path, content)
		if err != nil {
			return true, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		report.Dependencies = append(report.Dependencies, deps...)
		report.Problems = append(report.Problems, problems...)
		return true, nil
	}

	return false, nil
}

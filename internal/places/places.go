// README: Destination reference data with optional Places autocomplete.
package places

import (
	"context"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

//go:embed cities.csv
var citiesCSV string

// Service answers destination-selector queries. The embedded city list is the
// static reference; when a Maps API key is configured, live Places text
// search refines free-text queries, degrading silently to the static list on
// any failure.
type Service struct {
	static []string
	maps   *maps.Client
	log    *logrus.Logger
}

func New(mapsAPIKey string, log *logrus.Logger) (*Service, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	static, err := parseCities(citiesCSV)
	if err != nil {
		return nil, fmt.Errorf("parse embedded city list: %w", err)
	}

	s := &Service{static: static, log: log}
	if mapsAPIKey != "" {
		client, err := maps.NewClient(maps.WithAPIKey(mapsAPIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create maps client: %w", err)
		}
		s.maps = client
	}
	return s, nil
}

// Suggest returns up to limit "City, Country" labels matching q. An empty
// query returns the head of the static list.
func (s *Service) Suggest(ctx context.Context, q string, limit int) []string {
	if limit <= 0 {
		limit = 20
	}
	q = strings.TrimSpace(q)

	if q != "" && s.maps != nil {
		if labels := s.searchPlaces(ctx, q, limit); len(labels) > 0 {
			return labels
		}
	}
	return s.matchStatic(q, limit)
}

func (s *Service) matchStatic(q string, limit int) []string {
	lower := strings.ToLower(q)
	var out []string
	for _, label := range s.static {
		if lower == "" || strings.Contains(strings.ToLower(label), lower) {
			out = append(out, label)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (s *Service) searchPlaces(ctx context.Context, q string, limit int) []string {
	resp, err := s.maps.TextSearch(ctx, &maps.TextSearchRequest{Query: q + " city"})
	if err != nil {
		s.log.WithError(err).Debug("places search failed, using static list")
		return nil
	}

	var out []string
	for _, r := range resp.Results {
		label := r.Name
		if country := lastComponent(r.FormattedAddress); country != "" && country != r.Name {
			label = r.Name + ", " + country
		}
		out = append(out, label)
		if len(out) == limit {
			break
		}
	}
	return out
}

func lastComponent(address string) string {
	parts := strings.Split(address, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

func parseCities(raw string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	var out []string
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue
		}
		city := strings.TrimSpace(rec[0])
		country := strings.TrimSpace(rec[1])
		if city == "" || country == "" {
			continue
		}
		label := city + ", " + country
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out, nil
}

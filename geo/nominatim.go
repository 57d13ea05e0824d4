package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	nominatimLogPrefix = "nominatim"
	nominatimTimeout   = 5 * time.Second

	DefaultNominatimEndpoint = "https://nominatim.openstreetmap.org/reverse"
)

type nominatimAddress struct {
	Road          string `json:"road"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb        string `json:"suburb"`
	Village       string `json:"village"`
	City          string `json:"city"`
	Town          string `json:"town"`
	County        string `json:"county"`
	State         string `json:"state"`
	Province      string `json:"province"`
	Region        string `json:"region"`
	Country       string `json:"country"`
}

type nominatimResponse struct {
	Address *nominatimAddress `json:"address"`
}

// NominatimLocationResolver resolves location metadata through the OSM
// nominatim reverse-geocoding endpoint. Nominatim's usage policy requires
// an identifying client label, sent as the User-Agent header.
type NominatimLocationResolver struct {
	client      *http.Client
	endpoint    string
	clientLabel string
}

func NewNominatimLocationResolver(client *http.Client, endpoint, clientLabel string) *NominatimLocationResolver {
	if endpoint == "" {
		endpoint = DefaultNominatimEndpoint
	}
	return &NominatimLocationResolver{
		client:      client,
		endpoint:    endpoint,
		clientLabel: clientLabel,
	}
}

func (r *NominatimLocationResolver) Resolve(latitude, longitude float64) (Address, error) {
	log.WithFields(log.Fields{
		"prefix": nominatimLogPrefix,
		"lat":    latitude,
		"lon":    longitude,
	}).Debug("reverse geocode lookup")

	ctx, cancel := context.WithTimeout(context.Background(), nominatimTimeout)
	defer cancel()

	url := fmt.Sprintf("%s?format=jsonv2&lat=%f&lon=%f", r.endpoint, latitude, longitude)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return Address{}, err
	}
	req.Header.Set("User-Agent", r.clientLabel)

	resp, err := r.client.Do(req.WithContext(ctx))
	if err != nil {
		return Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("nominatim responded with status %d", resp.StatusCode)
	}

	var result nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Address{}, err
	}
	if result.Address == nil {
		return Address{}, ErrNoGeoInfoFound
	}

	a := result.Address
	return Address{
		RoadName:    firstNonEmpty(a.Road, a.Neighbourhood, a.Suburb, a.Village),
		District:    firstNonEmpty(a.County, a.State, a.Province, a.Region),
		FullAddress: joinNonEmpty(a.Road, a.Neighbourhood, a.Suburb, a.Village, a.City, a.Town, a.County, a.State, a.Country),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

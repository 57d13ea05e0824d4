package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// Address is the human-readable location metadata resolved for a
// coordinate. Every field is independently optional.
type Address struct {
	RoadName    string
	District    string
	FullAddress string
}

// Empty reports whether nothing could be resolved.
func (a Address) Empty() bool {
	return a.RoadName == "" && a.District == "" && a.FullAddress == ""
}

// LocationResolver - interface for resolving location metadata.
// Production binds it to an HTTP geocoder, tests bind it to a fixture.
type LocationResolver interface {
	Resolve(latitude, longitude float64) (Address, error)
}

var defaultResolver LocationResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// GeocodingLocationResolver resolves through the google maps geocoding API.
type GeocodingLocationResolver struct {
	client *maps.Client
}

func NewGeocodingLocationResolver(client *maps.Client) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

func (g *GeocodingLocationResolver) Resolve(latitude, longitude float64) (Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: latitude,
			Lng: longitude,
		},
		Language: "en",
	})
	if nil != err {
		return Address{}, err
	}

	if len(geos) == 0 {
		return Address{}, ErrNoGeoInfoFound
	}

	var address Address
	var level1, level2 string
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "route":
			address.RoadName = a.LongName
		case "administrative_area_level_1":
			level1 = a.LongName
		case "administrative_area_level_2":
			level2 = a.LongName
		}
	}

	address.District = level2
	if address.District == "" {
		address.District = level1
	}
	address.FullAddress = geos[0].FormattedAddress

	return address, nil
}

// MultipleLocationResolver tries each resolver in order and returns the
// first successful answer.
type MultipleLocationResolver struct {
	resolvers []LocationResolver
}

func NewMultipleLocationResolver(resolvers ...LocationResolver) *MultipleLocationResolver {
	return &MultipleLocationResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleLocationResolver) Resolve(latitude, longitude float64) (Address, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(latitude, longitude)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return Address{}, NewMultipleResolverErrors(errors)
}

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

func ResolveLocation(latitude, longitude float64) (Address, error) {
	if defaultResolver == nil {
		return Address{}, ErrResolverNotInitialized
	}

	return defaultResolver.Resolve(latitude, longitude)
}

package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominatimResolve(t *testing.T) {
	var gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))

		w.Write([]byte(`{
			"address": {
				"road": "MG Road",
				"suburb": "Shivajinagar",
				"city": "Bengaluru",
				"county": "Bangalore Urban",
				"state": "Karnataka",
				"country": "India"
			}
		}`))
	}))
	defer ts.Close()

	r := NewNominatimLocationResolver(ts.Client(), ts.URL, "pothole-api-test")

	address, err := r.Resolve(12.9758, 77.6045)
	assert.NoError(t, err)
	assert.Equal(t, "pothole-api-test", gotUserAgent)
	assert.Equal(t, "MG Road", address.RoadName)
	assert.Equal(t, "Bangalore Urban", address.District)
	assert.Equal(t, "MG Road, Shivajinagar, Bengaluru, Bangalore Urban, Karnataka, India", address.FullAddress)
}

func TestNominatimResolveFallbackFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"address": {
				"suburb": "Old Town",
				"state": "Karnataka",
				"country": "India"
			}
		}`))
	}))
	defer ts.Close()

	r := NewNominatimLocationResolver(ts.Client(), ts.URL, "pothole-api-test")

	address, err := r.Resolve(12.9, 77.6)
	assert.NoError(t, err)
	// road falls back to the suburb, district falls back to the state
	assert.Equal(t, "Old Town", address.RoadName)
	assert.Equal(t, "Karnataka", address.District)
	assert.Equal(t, "Old Town, Karnataka, India", address.FullAddress)
}

func TestNominatimResolveNoAddress(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer ts.Close()

	r := NewNominatimLocationResolver(ts.Client(), ts.URL, "pothole-api-test")

	address, err := r.Resolve(0, 0)
	assert.Equal(t, ErrNoGeoInfoFound, err)
	assert.True(t, address.Empty())
}

func TestNominatimResolveServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	r := NewNominatimLocationResolver(ts.Client(), ts.URL, "pothole-api-test")

	address, err := r.Resolve(12.9, 77.6)
	assert.Error(t, err)
	assert.True(t, address.Empty())
}

func TestNominatimResolveMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	r := NewNominatimLocationResolver(ts.Client(), ts.URL, "pothole-api-test")

	_, err := r.Resolve(12.9, 77.6)
	assert.Error(t, err)
}

func TestNominatimResolveTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	r := NewNominatimLocationResolver(http.DefaultClient, ts.URL, "pothole-api-test")

	address, err := r.Resolve(12.9, 77.6)
	assert.Error(t, err)
	assert.True(t, address.Empty())
}

func TestNominatimDefaultEndpoint(t *testing.T) {
	r := NewNominatimLocationResolver(http.DefaultClient, "", "pothole-api-test")
	assert.Equal(t, DefaultNominatimEndpoint, r.endpoint)
}

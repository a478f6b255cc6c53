package sl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sitesPayload = `[
	{"id": 9192, "name": "Slussen", "lat": 59.320, "lon": 18.072},
	{"id": 9001, "name": "T-Centralen", "lat": 59.331, "lon": 18.061},
	{"id": 9325, "name": "Sundbybergs centrum", "lat": 59.361, "lon": 17.971}
]`

const departuresPayload = `{
	"departures": [
		{
			"destination": "Nynäshamn",
			"direction_code": 1,
			"direction": "Söderut",
			"state": "EXPECTED",
			"display": "5 min",
			"scheduled": "2024-01-01T14:30:00+01:00",
			"expected": "2024-01-01T14:35:00+01:00",
			"line": {"id": 43, "designation": "43", "transport_mode": "TRAIN"},
			"stop_point": {"id": 1, "designation": "2"}
		}
	],
	"stop_deviations": [
		{"id": 100, "importance_level": 5, "message": "Elevator out of service"}
	]
}`

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := NewClient()
	client.BaseURL = server.URL

	return client, server
}

func TestSearchSites(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(sitesPayload))
	})
	defer server.Close()

	tests := []struct {
		name    string
		query   string
		expects []string
	}{
		{
			name:    "case insensitive substring",
			query:   "CENTRAL",
			expects: []string{"T-Centralen"},
		},
		{
			name:    "multiple matches keep upstream order",
			query:   "centrum",
			expects: []string{"Sundbybergs centrum"},
		},
		{
			name:    "no matches is not an error",
			query:   "Uppsala",
			expects: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sites, err := client.SearchSites(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("SearchSites returned error: %v", err)
			}

			if len(sites) != len(tt.expects) {
				t.Fatalf("expected %d sites, got %d", len(tt.expects), len(sites))
			}
			for i, name := range tt.expects {
				if sites[i].Name != name {
					t.Errorf("expected site %s, got %s", name, sites[i].Name)
				}
			}
		})
	}
}

func TestDepartures(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sites/9192/departures" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(departuresPayload))
	})
	defer server.Close()

	response, err := client.Departures(context.Background(), "9192")
	if err != nil {
		t.Fatalf("Departures returned error: %v", err)
	}

	if len(response.Departures) != 1 {
		t.Fatalf("expected 1 departure, got %d", len(response.Departures))
	}

	departure := response.Departures[0]
	if departure.Destination != "Nynäshamn" {
		t.Errorf("expected destination Nynäshamn, got %s", departure.Destination)
	}
	if departure.Line == nil || departure.Line.Designation != "43" {
		t.Error("expected line 43")
	}
	if departure.StopPoint == nil || departure.StopPoint.Designation != "2" {
		t.Error("expected platform 2")
	}

	if len(response.StopDeviations) != 1 || response.StopDeviations[0].Message != "Elevator out of service" {
		t.Errorf("expected single stop deviation, got %v", response.StopDeviations)
	}
}

func TestDeparturesEmptyIsNotAnError(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"departures": []}`))
	})
	defer server.Close()

	response, err := client.Departures(context.Background(), "9192")
	if err != nil {
		t.Fatalf("Departures returned error: %v", err)
	}

	if len(response.Departures) != 0 {
		t.Errorf("expected an empty departure list, got %d", len(response.Departures))
	}
}

func TestDeparturesFetchError(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Departures(context.Background(), "9192")

	var fetchError *FetchError
	if !errors.As(err, &fetchError) {
		t.Fatalf("expected a FetchError, got %v", err)
	}
	if fetchError.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", fetchError.StatusCode)
	}
}

func TestDeparturesParseError(t *testing.T) {
	client, server := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"departures": [`))
	})
	defer server.Close()

	_, err := client.Departures(context.Background(), "9192")

	var parseError *ParseError
	if !errors.As(err, &parseError) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
}

func TestSitesConnectionError(t *testing.T) {
	client := NewClient()
	client.BaseURL = "http://127.0.0.1:1"

	_, err := client.Sites(context.Background())

	var fetchError *FetchError
	if !errors.As(err, &fetchError) {
		t.Fatalf("expected a FetchError, got %v", err)
	}
}

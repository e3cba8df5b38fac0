package petapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBreedInfoDogNormalization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/breeds/search", r.URL.Path)
		require.Equal(t, "Labrador", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"name": "Labrador Retriever",
			"temperament": "Kind, Outgoing",
			"life_span": "10 - 12 years",
			"bred_for": "Water retrieving",
			"origin": "Canada",
			"weight": {"metric": "25 - 36"},
			"height": {"metric": "55 - 62"},
			"image": {"url": "https://example.com/lab.jpg"}
		}]`))
	}))
	defer srv.Close()

	svc := NewDefaultBreedService(srv.URL, srv.URL, nil, zap.NewNop())
	info, err := svc.BreedInfo(context.Background(), "dog", "Labrador")
	require.NoError(t, err)
	require.NotNil(t, info)
	require.Equal(t, "Labrador Retriever", info.Name)
	require.Equal(t, "25 - 36 kg", info.Weight)
	require.Equal(t, "55 - 62 cm", info.Height)
	require.Equal(t, "Water retrieving", info.Description)
	require.Nil(t, info.Traits)
}

func TestBreedInfoCatIncludesTraits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"name": "Siamese",
			"temperament": "Active, Agile",
			"life_span": "12 - 15",
			"description": "Talkative and social",
			"origin": "Thailand",
			"weight": {"metric": "2 - 5"},
			"affection_level": 5,
			"child_friendly": 4,
			"dog_friendly": 5,
			"energy_level": 5
		}]`))
	}))
	defer srv.Close()

	svc := NewDefaultBreedService(srv.URL, srv.URL, nil, zap.NewNop())
	info, err := svc.BreedInfo(context.Background(), "cat", "Siamese")
	require.NoError(t, err)
	require.NotNil(t, info)
	require.NotNil(t, info.Traits)
	require.Equal(t, 5, info.Traits.AffectionLevel)
	require.Equal(t, "2 - 5 kg", info.Weight)
}

func TestBreedInfoNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewDefaultBreedService(srv.URL, srv.URL, nil, zap.NewNop())
	info, err := svc.BreedInfo(context.Background(), "dog", "Nonexistent")
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestBreedInfoUpstreamFailureIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewDefaultBreedService(srv.URL, srv.URL, nil, zap.NewNop())
	info, err := svc.BreedInfo(context.Background(), "cat", "Siamese")
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestBreedInfoRejectsUnknownPetType(t *testing.T) {
	svc := NewDefaultBreedService("http://unused", "http://unused", nil, zap.NewNop())
	info, err := svc.BreedInfo(context.Background(), "hamster", "Syrian")
	require.NoError(t, err)
	require.Nil(t, info)

	info, err = svc.BreedInfo(context.Background(), "dog", "   ")
	require.NoError(t, err)
	require.Nil(t, info)
}

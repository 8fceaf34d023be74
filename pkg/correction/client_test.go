package correction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/correct-transcript", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CorrectTranscriptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client-1", req.ClientID)
		assert.Equal(t, "m-1", req.MeetingID)
		require.Len(t, req.Segments, 2)
		assert.Equal(t, 1, req.Segments[1].Index)

		resp := CorrectResponse{
			Segments: []WireSegment{
				{Index: 0, StartSec: 0, EndSec: 5, Text: "hello world"},
				{Index: 1, StartSec: 5, EndSec: 10, Text: "goodbye"},
			},
			Questions: []WireQuestion{
				{ID: "q-1", Index: 1, Original: "goodby", Options: []string{"goodbye"}, Question: "Which spelling?"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.CorrectTranscript(context.Background(), &CorrectTranscriptRequest{
		ClientID:  "client-1",
		MeetingID: "m-1",
		Segments: []WireSegment{
			{Index: 0, StartSec: 0, EndSec: 5, Text: "helo world"},
			{Index: 1, StartSec: 5, EndSec: 10, Text: "goodby"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Segments, 2)
	assert.Equal(t, "hello world", resp.Segments[0].Text)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "q-1", resp.Questions[0].ID)
}

func TestCorrectTargetedCarriesIndexSets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/correct-targeted", r.URL.Path)

		var req CorrectTargetedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{1}, req.RetranscribedIndices)
		assert.Equal(t, map[string]string{"2": "meeting notes"}, req.UserCorrectedIndices)

		require.NoError(t, json.NewEncoder(w).Encode(CorrectResponse{}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.CorrectTargeted(context.Background(), &CorrectTargetedRequest{
		ClientID:             "client-1",
		MeetingID:            "m-1",
		RetranscribedIndices: []int{1},
		UserCorrectedIndices: map[string]string{"2": "meeting notes"},
	})
	require.NoError(t, err)
}

func TestAnswerCorrectionQuestions(t *testing.T) {
	var got AnswerQuestionsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/answer-questions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	err := client.AnswerCorrectionQuestions(context.Background(), &AnswerQuestionsRequest{
		ClientID: "client-1",
		Answers:  []WireAnswer{{Original: "Nevim", Corrected: "meeting notes", Category: "term"}},
	})
	require.NoError(t, err)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, "meeting notes", got.Answers[0].Corrected)
}

func TestListCorrections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/list-corrections", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(ListCorrectionsResponse{
			Corrections: []StoredCorrection{
				{Metadata: CorrectionMetadata{Original: "Nevim", Corrected: "meeting notes", Category: "term"}},
			},
		}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.ListCorrections(context.Background(), &ListCorrectionsRequest{ClientID: "client-1", MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, resp.Corrections, 1)
	assert.Equal(t, "meeting notes", resp.Corrections[0].Metadata.Corrected)
}

func TestNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "agent exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.CorrectTranscript(context.Background(), &CorrectTranscriptRequest{ClientID: "c", MeetingID: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.False(t, IsConnectionError(err))
}

func TestUnreachableAgentIsConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, time.Second)
	_, err := client.CorrectTranscript(context.Background(), &CorrectTranscriptRequest{ClientID: "c", MeetingID: "m"})
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
}

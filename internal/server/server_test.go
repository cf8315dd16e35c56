// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/meeting-tasks/internal/segment"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTranscriber struct {
	text     string
	err      error
	filename string
	audio    string
}

func (s *stubTranscriber) Transcribe(_ context.Context, filename string, audio io.Reader) (string, error) {
	s.filename = filename
	data, _ := io.ReadAll(audio)
	s.audio = string(data)
	return s.text, s.err
}

func newTestServer(tr *stubTranscriber) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := types.DefaultPipelineConfig().Server
	if tr == nil {
		return New(cfg, segment.NewLineSegmenter(), nil, logger)
	}
	return New(cfg, segment.NewLineSegmenter(), tr, logger)
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func audioRequest(t *testing.T, teamJSON string, withFile bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("team_members_json", teamJSON))
	if withFile {
		fw, err := mw.CreateFormFile("audio_file", "standup.wav")
		require.NoError(t, err)
		_, err = fw.Write([]byte("RIFF"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/process-audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const teamJSON = `[{"name":"Alice","skills":["backend"]},{"name":"Bob"}]`

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(nil), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","endpoints":["/process-text","/process-audio"]}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	s := newTestServer(nil)

	w := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = do(t, s, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestProcessText(t *testing.T) {
	body := `{
		"transcript": "Alice, please fix the login bug by Friday because it's blocking users.\nThe weather is nice today.",
		"team_members": [{"name":"Alice","skills":["backend"]},{"name":"Bob"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/process-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := do(t, newTestServer(nil), req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tasks []types.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "fix the login bug by Friday because it's blocking users.", tasks[0].Description)
	require.NotNil(t, tasks[0].AssignedTo)
	assert.Equal(t, "Alice", *tasks[0].AssignedTo)
	require.NotNil(t, tasks[0].Deadline)
	assert.Equal(t, "by Friday", *tasks[0].Deadline)
	require.NotNil(t, tasks[0].Reason)
	assert.Equal(t, "because it's blocking users", *tasks[0].Reason)
	assert.Equal(t, []int{}, tasks[0].Dependencies)
}

func TestProcessText_EmptyTranscript(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/process-text", strings.NewReader(`{"transcript":"","team_members":[]}`))
	req.Header.Set("Content-Type", "application/json")

	w := do(t, newTestServer(nil), req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProcessText_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"transcript": `, "Invalid request body"},
		{"missing team", `{"transcript": "Alice, fix it."}`, "team_members is required"},
		{"missing transcript", `{"team_members": []}`, "transcript is required"},
		{"null transcript", `{"transcript": null, "team_members": []}`, "transcript is required"},
		{"null team", `{"transcript": "x", "team_members": null}`, "Invalid team_members"},
		{"team not a list", `{"transcript": "x", "team_members": {"name": "Alice"}}`, "Invalid team_members"},
		{"member without name", `{"transcript": "x", "team_members": [{"role":"qa"}]}`, "Invalid team_members"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/process-text", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := do(t, newTestServer(nil), req)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, detail(t, w), tt.want)
		})
	}
}

func TestProcessAudio(t *testing.T) {
	tr := &stubTranscriber{text: "Bob, please deploy the update."}
	w := do(t, newTestServer(tr), audioRequest(t, teamJSON, true))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "standup.wav", tr.filename)
	assert.Equal(t, "RIFF", tr.audio)

	var tasks []types.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].AssignedTo)
	assert.Equal(t, "Bob", *tasks[0].AssignedTo)
}

func TestProcessAudio_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tr       *stubTranscriber
		team     string
		withFile bool
		status   int
		want     string
	}{
		{"bad team json", &stubTranscriber{}, `not json`, true, http.StatusBadRequest, "Invalid team_members_json"},
		{"member without name", &stubTranscriber{}, `[{"role":"qa"}]`, true, http.StatusBadRequest, "Invalid team_members_json"},
		{"missing file", &stubTranscriber{}, teamJSON, false, http.StatusBadRequest, "audio_file"},
		{"no transcriber", nil, teamJSON, true, http.StatusServiceUnavailable, "not configured"},
		{"transcription fails", &stubTranscriber{err: errors.New("upstream 500")}, teamJSON, true, http.StatusInternalServerError, "Failed to transcribe audio: upstream 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestServer(tt.tr), audioRequest(t, tt.team, tt.withFile))
			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Contains(t, detail(t, w), tt.want)
		})
	}
}

func TestProcessEndpoints_SameTeamDecoding(t *testing.T) {
	const transcript = "Bob, please deploy the update."
	team := `[{"name":"Alice","skills":["backend"]},{"name":"Bob","extra":1}]`

	body := `{"transcript": "` + transcript + `", "team_members": ` + team + `}`
	req := httptest.NewRequest(http.MethodPost, "/process-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	text := do(t, newTestServer(nil), req)
	require.Equal(t, http.StatusOK, text.Code, text.Body.String())

	audio := do(t, newTestServer(&stubTranscriber{text: transcript}), audioRequest(t, team, true))
	require.Equal(t, http.StatusOK, audio.Code, audio.Body.String())

	assert.JSONEq(t, text.Body.String(), audio.Body.String())

	var tasks []types.Task
	require.NoError(t, json.Unmarshal(text.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Reason)
	assert.Equal(t, "Assigned to Bob because they were mentioned in the meeting.", *tasks[0].Reason)
}

func TestProcessAudio_NullTeam(t *testing.T) {
	w := do(t, newTestServer(&stubTranscriber{}), audioRequest(t, `null`, true))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, detail(t, w), "Invalid team_members_json")
}

func TestProcessAudio_TooLarge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(types.ServerConfig{MaxUploadBytes: 64}, segment.NewLineSegmenter(), &stubTranscriber{}, logger)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio_file", "big.wav")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("a"), 1024))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/process-audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := do(t, s, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/meeting-tasks/internal/extract"
	"github.com/pdiddy/meeting-tasks/internal/team"
	"github.com/pdiddy/meeting-tasks/pkg/types"
)

// multipartMemory is how much of an upload is held in memory before
// spilling to a temp file.
const multipartMemory = 8 << 20

// ProcessTextRequest is the body of POST /process-text. Both fields are
// required; the transcript may be empty.
type ProcessTextRequest struct {
	Transcript  *string         `json:"transcript"`
	TeamMembers json.RawMessage `json:"team_members"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"endpoints": []string{"/process-text", "/process-audio"},
	})
}

func (s *Server) handleProcessText(c *gin.Context) {
	var req ProcessTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Transcript == nil {
		abort(c, http.StatusBadRequest, "Invalid request body: transcript is required")
		return
	}
	if len(req.TeamMembers) == 0 {
		abort(c, http.StatusBadRequest, "Invalid request body: team_members is required")
		return
	}
	members, err := team.ParseJSON(req.TeamMembers)
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid team_members: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, s.extract(*req.Transcript, members))
}

func (s *Server) handleProcessAudio(c *gin.Context) {
	if c.Request.ContentLength > s.cfg.MaxUploadBytes {
		abort(c, http.StatusRequestEntityTooLarge, "Uploaded file exceeds the size limit")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes)
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abort(c, http.StatusRequestEntityTooLarge, "Uploaded file exceeds the size limit")
			return
		}
		abort(c, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	members, err := team.ParseJSON([]byte(c.PostForm("team_members_json")))
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid team_members_json: "+err.Error())
		return
	}

	fh, err := c.FormFile("audio_file")
	if err != nil {
		abort(c, http.StatusBadRequest, "Missing audio_file: "+err.Error())
		return
	}

	if s.transcriber == nil {
		abort(c, http.StatusServiceUnavailable, "Audio transcription is not configured")
		return
	}

	f, err := fh.Open()
	if err != nil {
		abort(c, http.StatusInternalServerError, "Failed to read uploaded file: "+err.Error())
		return
	}
	defer f.Close()

	transcript, err := s.transcriber.Transcribe(c.Request.Context(), fh.Filename, f)
	if err != nil {
		s.logger.Error("transcription failed",
			slog.String("request_id", c.GetString(requestIDHeader)),
			slog.Any("err", err))
		abort(c, http.StatusInternalServerError, "Failed to transcribe audio: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, s.extract(transcript, members))
}

// extract segments the transcript and runs the pipeline.
func (s *Server) extract(transcript string, members []types.TeamMember) []types.Task {
	return extract.ExtractTasks(s.splitter.Split(transcript), members)
}

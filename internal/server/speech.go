package server

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"echo-tutor-backend/internal/tutor"
	"echo-tutor-backend/internal/types"
)

const defaultAudioMIME = "audio/wav"

// Common recording formats, resolved ahead of the platform mime table so the
// result does not depend on the host's /etc/mime.types.
var audioMIMEByExt = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/opus",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

func (s *Server) handleSpeechToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "audio file is required (field 'file')")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	if len(data) == 0 {
		s.writeError(w, http.StatusBadRequest, "empty file provided")
		return
	}

	mimeType := resolveAudioMIME(header.Header.Get("Content-Type"), header.Filename)
	text, err := s.generateAudio(r.Context(), s.prompts.Transcribe, mimeType, data)
	if err != nil {
		s.log.Warnw("transcription failed", "filename", header.Filename, "mime", mimeType, "err", err)
		s.writeJSON(w, http.StatusOK, types.TranscriptionResponse{Transcription: tutor.TranscriptionErrorMessage(err)})
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		text = tutor.NoTranscriptionSentinel
	}
	s.writeJSON(w, http.StatusOK, types.TranscriptionResponse{Transcription: text})
}

// resolveAudioMIME trusts the declared content type only when it is already
// an audio or video type; otherwise it guesses from the filename extension
// and finally falls back to audio/wav.
func resolveAudioMIME(declared, filename string) string {
	if strings.HasPrefix(declared, "audio/") || strings.HasPrefix(declared, "video/") {
		return declared
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" {
		if t, ok := audioMIMEByExt[ext]; ok {
			return t
		}
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return defaultAudioMIME
}

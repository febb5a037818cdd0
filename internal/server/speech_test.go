package server

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echo-tutor-backend/internal/tutor"
	"echo-tutor-backend/internal/types"
)

func uploadRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/speech-to-text", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestSpeechToText(t *testing.T) {
	gen := &fakeGenerator{audioReply: "  Hello, what's the weather today?  "}
	s := newTestServer(t, testConfig(), gen, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, uploadRequest(t, "clip.ogg", "audio/ogg", []byte("fake-audio-bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[types.TranscriptionResponse](t, w)
	assert.Equal(t, "Hello, what's the weather today?", resp.Transcription)

	assert.Equal(t, "audio/ogg", gen.lastMIME)
	assert.Equal(t, []byte("fake-audio-bytes"), gen.lastData)
	assert.Contains(t, gen.lastInstruction, "transcribe")
}

func TestSpeechToTextEmptyUploadRejected(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeGenerator{}, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, uploadRequest(t, "clip.wav", "audio/wav", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSpeechToTextMissingFileRejected(t *testing.T) {
	s := newTestServer(t, testConfig(), &fakeGenerator{}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())
	r := httptest.NewRequest(http.MethodPost, "/speech-to-text", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSpeechToTextMIMEFromExtensionWhenDeclaredIsNotAudio(t *testing.T) {
	gen := &fakeGenerator{audioReply: "hi"}
	s := newTestServer(t, testConfig(), gen, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, uploadRequest(t, "a.wav", "application/pdf", []byte("bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", gen.lastMIME)
}

func TestSpeechToTextErrorBecomesSentinel(t *testing.T) {
	gen := &fakeGenerator{audioErr: errors.New("model offline")}
	s := newTestServer(t, testConfig(), gen, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, uploadRequest(t, "clip.wav", "audio/wav", []byte("bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[types.TranscriptionResponse](t, w)
	assert.Contains(t, resp.Transcription, "[Error during transcription:")
	assert.Contains(t, resp.Transcription, "model offline")
}

func TestSpeechToTextEmptyReplyBecomesPlaceholder(t *testing.T) {
	gen := &fakeGenerator{audioReply: "\n  "}
	s := newTestServer(t, testConfig(), gen, nil)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, uploadRequest(t, "clip.wav", "audio/wav", []byte("bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[types.TranscriptionResponse](t, w)
	assert.Equal(t, tutor.NoTranscriptionSentinel, resp.Transcription)
}

func TestResolveAudioMIME(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		filename string
		want     string
	}{
		{"declared audio passes through", "audio/ogg", "a.bin", "audio/ogg"},
		{"declared video passes through", "video/mp4", "a.bin", "video/mp4"},
		{"pdf declared, wav extension wins", "application/pdf", "a.wav", "audio/wav"},
		{"mp3 extension", "application/octet-stream", "song.mp3", "audio/mpeg"},
		{"no declared, unknown extension", "", "mystery.zzz", "audio/wav"},
		{"no declared, no extension", "", "blob", "audio/wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAudioMIME(tt.declared, tt.filename))
		})
	}
}

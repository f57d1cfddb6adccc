package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-letter/models"
)

func TestSaveAudio(t *testing.T) {
	dir := t.TempDir()
	reports := newFakeReportStore()
	reports.reports["vid-1"] = &models.Report{VideoID: "vid-1", Title: "t"}

	svc := NewAudioService(reports, dir, "/static/audio")

	url, err := svc.SaveAudio(context.Background(), "vid-1", strings.NewReader("mp3-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/static/audio/vid-1.mp3", url)

	data, err := os.ReadFile(filepath.Join(dir, "vid-1.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))

	assert.True(t, reports.reports["vid-1"].HasAudio)
}

func TestSaveAudioReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	reports := newFakeReportStore()
	reports.reports["vid-1"] = &models.Report{VideoID: "vid-1", Title: "t"}

	svc := NewAudioService(reports, dir, "/static/audio")

	_, err := svc.SaveAudio(context.Background(), "vid-1", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = svc.SaveAudio(context.Background(), "vid-1", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "vid-1.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSaveAudioUnknownReport(t *testing.T) {
	svc := NewAudioService(newFakeReportStore(), t.TempDir(), "/static/audio")

	_, err := svc.SaveAudio(context.Background(), "missing", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAudioEmptyVideoID(t *testing.T) {
	svc := NewAudioService(newFakeReportStore(), t.TempDir(), "/static/audio")

	_, err := svc.SaveAudio(context.Background(), "", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrValidation)
}

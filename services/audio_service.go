package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/mongo"

	"clip-letter/internal/logger"
)

// AudioService stores narration files on local disk and flips the report's
// has_audio flag. Files are keyed by video id so a re-upload replaces the
// previous narration in place.
type AudioService struct {
	reports   ReportStore
	dir       string
	publicURL string
}

func NewAudioService(reports ReportStore, dir, publicURL string) *AudioService {
	return &AudioService{reports: reports, dir: dir, publicURL: publicURL}
}

// SaveAudio writes the uploaded narration for an existing report and returns
// its public URL. Uploads for unknown reports are rejected with ErrNotFound.
func (s *AudioService) SaveAudio(ctx context.Context, videoID string, r io.Reader) (string, error) {
	if videoID == "" {
		return "", fmt.Errorf("%w: video_id is required", ErrValidation)
	}

	if _, err := s.reports.FindByVideoID(ctx, videoID); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrNotFound
		}
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("오디오 디렉토리 생성 실패: %w", err)
	}

	filename := videoID + ".mp3"
	path := filepath.Join(s.dir, filename)

	// 쓰다 만 파일이 제공되지 않도록 임시 파일에 쓰고 rename 한다
	tmp, err := os.CreateTemp(s.dir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("오디오 임시 파일 생성 실패: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("오디오 저장 실패: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("오디오 저장 실패: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("오디오 파일 교체 실패: %w", err)
	}

	if err := s.reports.SetHasAudio(ctx, videoID, true); err != nil {
		return "", fmt.Errorf("has_audio 갱신 실패: %w", err)
	}

	logger.InfoWithFields("오디오 업로드 완료", logger.Fields{
		"video_id": videoID,
		"path":     path,
	})

	return s.publicURL + "/" + filename, nil
}

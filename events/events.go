package events

import "time"

// ReportAdded는 SSE 스트림으로 브로드캐스트되는 이벤트 타입 이름입니다.
const ReportAdded = "report-added"

// ReportAddedEvent는 리포트 수집이 완료되었을 때 발행되는 알림 페이로드입니다.
type ReportAddedEvent struct {
	Event        string    `json:"event"`
	VideoID      string    `json:"video_id"`
	SummaryTypes []string  `json:"summary_types"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewReportAdded는 현재 시각의 타임스탬프로 ReportAddedEvent를 생성합니다.
func NewReportAdded(videoID string, summaryTypes []string) ReportAddedEvent {
	if summaryTypes == nil {
		summaryTypes = []string{}
	}
	return ReportAddedEvent{
		Event:        ReportAdded,
		VideoID:      videoID,
		SummaryTypes: summaryTypes,
		Timestamp:    time.Now().UTC(),
	}
}

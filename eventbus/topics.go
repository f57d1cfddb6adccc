package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 관리합니다.
// 필요시 환경설정으로 교체할 수 있도록 한 곳에서 관리합니다.

var (
	// TopicReportIngest 는 처리 파이프라인이 완성된 리포트를 발행하는 토픽입니다.
	// ingestworker 가 구독하여 HTTP 인제스트와 동일한 업서트를 적용합니다.
	TopicReportIngest = NewTopic("clip-letter.report.ingest")
)

var AllTopics = []Topic{
	TopicReportIngest,
}

package eventbus

import (
	"strings"
	"time"
)

// ParseRetryDelayFromTopicName는 토픽 이름에서 재시도 지연 시간을 추출합니다.
// 지원 형식: "<base>.retry.<duration>" (예: my_topic.retry.10s)
// RetryDelays 목록에 없는 지연 시간은 유효하지 않은 것으로 처리합니다.
// 반환: (delay, ok)
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, ".retry.")
	if idx == -1 || idx+7 >= len(name) {
		return 0, false
	}
	suffix := name[idx+7:]
	d, err := time.ParseDuration(suffix)
	if err != nil {
		return 0, false
	}
	for _, known := range RetryDelays {
		if d == known {
			return d, true
		}
	}
	return 0, false
}

package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRetryDelayFromTopicName(t *testing.T) {
	d, ok := ParseRetryDelayFromTopicName("clip-letter.report.ingest.retry.10s")
	assert.True(t, ok)
	assert.Equal(t, 10*time.Second, d)

	d, ok = ParseRetryDelayFromTopicName("clip-letter.report.ingest.retry.1m0s")
	assert.True(t, ok)
	assert.Equal(t, time.Minute, d)

	_, ok = ParseRetryDelayFromTopicName("clip-letter.report.ingest")
	assert.False(t, ok)

	// RetryDelays 목록 밖의 지연 시간은 거부한다
	_, ok = ParseRetryDelayFromTopicName("clip-letter.report.ingest.retry.7s")
	assert.False(t, ok)

	_, ok = ParseRetryDelayFromTopicName("clip-letter.report.ingest.retry.bogus")
	assert.False(t, ok)
}

func TestRetryTopicNamesRoundTrip(t *testing.T) {
	topic := NewTopic("clip-letter.report.ingest")
	for i, name := range topic.GetRetryTopics() {
		d, ok := ParseRetryDelayFromTopicName(name)
		assert.True(t, ok, name)
		assert.Equal(t, RetryDelays[i], d)
	}
}

package events

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

// Headers exposes kafka message headers to the otel propagators. Keys match
// case-insensitively, a repeated Set overwrites the first match.
type Headers []kafka.Header

func (h *Headers) Get(key string) string {
	for _, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			return string(hdr.Value)
		}
	}
	return ""
}

func (h *Headers) Set(key, value string) {
	for i := range *h {
		if strings.EqualFold((*h)[i].Key, key) {
			(*h)[i].Value = []byte(value)
			return
		}
	}
	*h = append(*h, kafka.Header{Key: key, Value: []byte(value)})
}

func (h *Headers) Keys() []string {
	keys := make([]string, 0, len(*h))
	for _, hdr := range *h {
		keys = append(keys, hdr.Key)
	}
	return keys
}

// InjectTrace writes the span context of ctx into the message headers.
func InjectTrace(ctx context.Context, msg *kafka.Message) {
	headers := Headers(msg.Headers)
	otel.GetTextMapPropagator().Inject(ctx, &headers)
	msg.Headers = headers
}

// ExtractTrace returns ctx carrying the remote span context of msg, if any.
func ExtractTrace(ctx context.Context, msg kafka.Message) context.Context {
	headers := Headers(msg.Headers)
	return otel.GetTextMapPropagator().Extract(ctx, &headers)
}

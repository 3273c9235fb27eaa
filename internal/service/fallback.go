package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// FallbackChat answers queries no structured scenario can handle through
// open-ended generation. Each call is stateless apart from a fixed two-turn
// priming exchange establishing the assistant's persona.
type FallbackChat struct {
	oracle Oracle
	log    *zap.SugaredLogger
}

// NewFallbackChat creates the open-ended generation fallback.
func NewFallbackChat(oracle Oracle, log *zap.SugaredLogger) *FallbackChat {
	return &FallbackChat{oracle: oracle, log: log}
}

const fallbackPersona = `Bạn là trợ lý bán hàng cửa hàng bán giày, giúp trả lời câu hỏi khách hàng về sản phẩm giày.
Hãy trả lời ngắn gọn câu hỏi của khách hàng và lái sang giới thiệu cho khách hàng về các thương hiệu giày mà cửa hàng bán: Nike, Adidas, Puma, Converse, Vans.
Hãy trả lời ngắn gọn và thân thiện. Trả lời bằng tiếng Việt.`

const fallbackAck = "Tôi sẽ trả lời câu hỏi của bạn về sản phẩm một cách ngắn gọn và thân thiện."

func fallbackMessages(query string) []ChatMessage {
	return []ChatMessage{
		{Role: "system", Content: fallbackPersona},
		{Role: "assistant", Content: fallbackAck},
		{Role: "user", Content: query},
	}
}

func fallbackApology(err error) string {
	return fmt.Sprintf("Xin lỗi, tôi không thể kết nối với AI để trả lời câu hỏi của bạn. Lỗi: %v", err)
}

// Reply generates an open-ended answer for the query. A model failure
// degrades to an apology string; the caller is never failed.
func (f *FallbackChat) Reply(ctx context.Context, query string) string {
	reply, err := f.oracle.Complete(ctx, fallbackMessages(query))
	if err != nil {
		f.log.Errorw("fallback generation failed", "error", err)
		return fallbackApology(err)
	}
	return reply
}

// ReplyStream is the streaming variant of Reply; callback receives each
// chunk as it arrives and the full reply is returned at the end.
func (f *FallbackChat) ReplyStream(ctx context.Context, query string, callback StreamCallback) string {
	reply, err := f.oracle.CompleteStream(ctx, fallbackMessages(query), callback)
	if err != nil {
		f.log.Errorw("streaming fallback generation failed", "error", err)
		return fallbackApology(err)
	}
	return reply
}

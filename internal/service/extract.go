package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"catalogbot/internal/utils"

	"go.uber.org/zap"
)

// Extractor pulls structured parameters (price ceiling, brand name, search
// keywords, product name) out of free-text queries. Price extraction is
// deterministic; the rest lean on the model with deterministic fallbacks.
type Extractor struct {
	oracle Oracle
	log    *zap.SugaredLogger
}

// NewExtractor creates an extractor sharing the given model handle.
func NewExtractor(oracle Oracle, log *zap.SugaredLogger) *Extractor {
	return &Extractor{oracle: oracle, log: log}
}

// ExtractPrice finds the first run of digits in the query after stripping
// thousands separators and parses it as a price ceiling in VND. No model
// call is involved.
func (e *Extractor) ExtractPrice(query string) (int64, bool) {
	clean := strings.ReplaceAll(query, ",", "")

	digits := utils.FirstDigitRun(clean)
	if digits == "" {
		return 0, false
	}

	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		e.log.Errorw("failed to parse price digits", "digits", digits, "error", err)
		return 0, false
	}
	return price, true
}

const brandPrompt = `Từ câu hỏi sau đây, hãy trích xuất tên thương hiệu giày mà người dùng đang hỏi.
Chỉ trả về tên thương hiệu chính xác, không kèm theo diễn giải hay bất kỳ từ nào khác.

Câu hỏi: "%s"`

// ExtractBrand asks the model for the brand name and takes the trimmed
// reply verbatim. Returns false only when the model call fails.
func (e *Extractor) ExtractBrand(ctx context.Context, query string) (string, bool) {
	reply, err := e.oracle.Complete(ctx, []ChatMessage{
		{Role: "user", Content: fmt.Sprintf(brandPrompt, query)},
	})
	if err != nil {
		e.log.Errorw("brand extraction failed", "error", err)
		return "", false
	}

	brand := utils.CleanModelReply(reply)
	e.log.Infow("extracted brand name", "brand", brand)
	return brand, true
}

// productStopWords are filler terms stripped before product-name extraction.
var productStopWords = []string{
	"thông tin", "chi tiết", "về", "sản phẩm", "có", "tên", "là",
	"cho", "tôi", "xem", "giày", "dép", "thể thao",
}

const productNamePrompt = `Từ câu hỏi sau đây, hãy trích xuất tên sản phẩm giày mà người dùng đang hỏi thông tin.
Chỉ trả về tên sản phẩm chính xác, không kèm theo diễn giải hay bất kỳ từ nào khác.

Câu hỏi: "%s"`

// ExtractProductName strips common filler words from the query; short
// remainders are used directly as the product name while longer ones are
// handed to the model. Never returns empty-handed: any model failure falls
// back to the cleaned query.
func (e *Extractor) ExtractProductName(ctx context.Context, query string) string {
	cleaned := strings.ToLower(query)
	for _, word := range productStopWords {
		cleaned = strings.ReplaceAll(cleaned, " "+word+" ", " ")
	}
	cleaned = strings.TrimSpace(cleaned)

	if len(strings.Fields(cleaned)) <= 2 {
		e.log.Infow("using cleaned query as product name", "name", cleaned)
		return cleaned
	}

	reply, err := e.oracle.Complete(ctx, []ChatMessage{
		{Role: "user", Content: fmt.Sprintf(productNamePrompt, cleaned)},
	})
	if err != nil {
		e.log.Errorw("product name extraction failed", "error", err)
		return cleaned
	}

	name := utils.CleanModelReply(reply)
	if name == "" {
		return cleaned
	}
	e.log.Infow("extracted product name", "name", name)
	return name
}

const keywordPrompt = `Từ câu hỏi tìm kiếm sau, hãy trích xuất các từ khóa quan trọng để tìm kiếm sản phẩm.
Chỉ trả về các từ khóa, không kèm theo diễn giải.

Câu hỏi: "%s"`

// ExtractKeyword asks the model for salient search keywords. On failure it
// falls back to the first word of the query with at least 3 characters, or
// the whole query if none qualifies.
func (e *Extractor) ExtractKeyword(ctx context.Context, query string) string {
	reply, err := e.oracle.Complete(ctx, []ChatMessage{
		{Role: "user", Content: fmt.Sprintf(keywordPrompt, query)},
	})
	if err != nil {
		e.log.Errorw("keyword extraction failed", "error", err)
		for _, word := range strings.Fields(query) {
			if utf8.RuneCountInString(word) >= 3 {
				return word
			}
		}
		return query
	}

	keywords := utils.CleanModelReply(reply)
	e.log.Infow("extracted search keywords", "keywords", keywords)
	return keywords
}

package service

import (
	"context"
	"fmt"
	"strings"

	"catalogbot/internal/model"
	"catalogbot/internal/utils"

	"go.uber.org/zap"
)

// Catalog is the read-only product gateway the router dispatches to. A nil
// price ceiling means extraction failed; the gateway answers with no rows.
type Catalog interface {
	ProductsUnderPrice(ctx context.Context, maxPrice *int64) ([]model.Product, error)
	ProductsByBrand(ctx context.Context, brand string) ([]model.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]model.Product, error)
	ProductByExactName(ctx context.Context, name string) (*model.Product, error)
}

// Router ties classifier, extractors, catalog gateway, formatter and
// open-ended fallback into one request/response cycle. Every query resolves
// to a textual answer; no error or panic crosses the router boundary.
type Router struct {
	classifier *Classifier
	extractor  *Extractor
	catalog    Catalog
	fallback   *FallbackChat
	threshold  float64
	log        *zap.SugaredLogger
}

// NewRouter creates a query router with the given confidence threshold.
func NewRouter(
	classifier *Classifier,
	extractor *Extractor,
	catalog Catalog,
	fallback *FallbackChat,
	threshold float64,
	log *zap.SugaredLogger,
) *Router {
	return &Router{
		classifier: classifier,
		extractor:  extractor,
		catalog:    catalog,
		fallback:   fallback,
		threshold:  threshold,
		log:        log,
	}
}

// Process answers a single user query.
func (r *Router) Process(ctx context.Context, query string) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorw("query processing panicked", "query", query, "panic", rec)
			reply = fmt.Sprintf("Xin lỗi, đã xảy ra lỗi khi xử lý câu hỏi của bạn: %v", rec)
		}
	}()

	query = strings.ToLower(strings.TrimSpace(query))
	r.log.Infow("processing query", "query", query)

	result := r.classifier.Classify(ctx, query)
	if result.Scenario == nil || result.Confidence < r.threshold {
		r.log.Infow("confidence below threshold, using fallback",
			"confidence", result.Confidence, "threshold", r.threshold)
		return r.fallback.Reply(ctx, query)
	}

	return r.dispatch(ctx, query, result.Scenario.Name)
}

func (r *Router) dispatch(ctx context.Context, query string, scenario model.Scenario) string {
	switch scenario {
	case model.ScenarioPriceFilter:
		return r.handlePriceFilter(ctx, query)
	case model.ScenarioBrandFilter:
		return r.handleBrandFilter(ctx, query)
	case model.ScenarioSearchProducts:
		return r.handleSearch(ctx, query)
	case model.ScenarioProductInfo:
		return r.handleProductInfo(ctx, query)
	default:
		// Unreachable with the fixed registry, but the contract is to
		// answer regardless.
		r.log.Warnw("unknown scenario, using fallback", "scenario", scenario)
		return r.fallback.Reply(ctx, query)
	}
}

func (r *Router) handlePriceFilter(ctx context.Context, query string) string {
	var ceiling *int64
	price, ok := r.extractor.ExtractPrice(query)
	if ok {
		ceiling = &price
	}

	r.log.Infow("searching products under price", "max_price", ceiling)
	products, err := r.catalog.ProductsUnderPrice(ctx, ceiling)
	if err != nil {
		r.log.Errorw("price query failed", "error", err)
		products = nil
	}

	if len(products) == 0 {
		return fmt.Sprintf("Không tìm thấy sản phẩm nào có giá dưới %s VND.", utils.GroupThousands(price))
	}

	summary := fmt.Sprintf("Tìm thấy %d sản phẩm có giá dưới %s VND:", len(products), utils.GroupThousands(price))
	return FormatProductList(summary, products)
}

func (r *Router) handleBrandFilter(ctx context.Context, query string) string {
	brand, ok := r.extractor.ExtractBrand(ctx, query)
	if !ok {
		return "Vui lòng cung cấp tên của thương hiệu bạn muốn tìm (ví dụ: sản phẩm của thương hiệu Nike)"
	}

	r.log.Infow("searching products by brand", "brand", brand)
	products, err := r.catalog.ProductsByBrand(ctx, brand)
	if err != nil {
		r.log.Errorw("brand query failed", "error", err)
		products = nil
	}

	if len(products) == 0 {
		return fmt.Sprintf("Không tìm thấy sản phẩm nào của thương hiệu '%s'.", brand)
	}

	summary := fmt.Sprintf("Tìm thấy %d sản phẩm của thương hiệu '%s':", len(products), brand)
	return FormatProductList(summary, products)
}

func (r *Router) handleSearch(ctx context.Context, query string) string {
	keyword := r.extractor.ExtractKeyword(ctx, query)

	r.log.Infow("searching products by keyword", "keyword", keyword)
	products, err := r.catalog.SearchProducts(ctx, keyword)
	if err != nil {
		r.log.Errorw("keyword search failed", "error", err)
		products = nil
	}

	if len(products) == 0 {
		return fmt.Sprintf("Không tìm thấy sản phẩm nào phù hợp với từ khóa '%s'.", keyword)
	}

	summary := fmt.Sprintf("Tìm thấy %d sản phẩm phù hợp với từ khóa '%s':", len(products), keyword)
	return FormatProductList(summary, products)
}

func (r *Router) handleProductInfo(ctx context.Context, query string) string {
	name := r.extractor.ExtractProductName(ctx, query)
	if name == "" {
		return "Vui lòng cung cấp tên của sản phẩm bạn muốn xem thông tin chi tiết."
	}

	r.log.Infow("looking up product by name", "name", name)
	exact, err := r.catalog.ProductByExactName(ctx, name)
	if err != nil {
		r.log.Errorw("exact name lookup failed", "error", err)
		exact = nil
	}
	if exact != nil {
		return "Thông tin chi tiết về sản phẩm:\n\n" + FormatProduct(*exact)
	}

	products, err := r.catalog.SearchProducts(ctx, name)
	if err != nil {
		r.log.Errorw("product name search failed", "error", err)
		products = nil
	}

	switch {
	case len(products) == 0:
		return fmt.Sprintf("Không tìm thấy sản phẩm nào có tên là '%s'. Bạn có thể thử cung cấp tên chính xác hoặc dùng chức năng tìm kiếm sản phẩm.", name)
	case len(products) == 1:
		return "Thông tin chi tiết về sản phẩm:\n\n" + FormatProduct(products[0])
	default:
		summary := fmt.Sprintf("Tìm thấy %d sản phẩm có tên tương tự '%s':", len(products), name)
		return FormatProductList(summary, products)
	}
}

// ProcessStream answers one query, streaming fallback generation chunks
// through callback. Structured scenario answers are computed in full and
// delivered as a single chunk since catalog lookups are not incremental.
func (r *Router) ProcessStream(ctx context.Context, query string, callback StreamCallback) (reply string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorw("streaming query processing panicked", "query", query, "panic", rec)
			reply = fmt.Sprintf("Xin lỗi, đã xảy ra lỗi khi xử lý câu hỏi của bạn: %v", rec)
		}
	}()

	query = strings.ToLower(strings.TrimSpace(query))

	result := r.classifier.Classify(ctx, query)
	if result.Scenario == nil || result.Confidence < r.threshold {
		return r.fallback.ReplyStream(ctx, query, callback)
	}

	reply = r.dispatch(ctx, query, result.Scenario.Name)
	if callback != nil {
		_ = callback(&StreamChunk{Content: reply, Done: true})
	}
	return reply
}

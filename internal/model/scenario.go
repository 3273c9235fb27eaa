package model

// Scenario identifies one of the supported structured query intents.
type Scenario string

const (
	ScenarioPriceFilter    Scenario = "price_filter"
	ScenarioBrandFilter    Scenario = "brand_filter"
	ScenarioSearchProducts Scenario = "search_products"
	ScenarioProductInfo    Scenario = "product_info"
)

// ScenarioDefinition pairs a scenario with the canonical example phrase the
// classifier compares user queries against.
type ScenarioDefinition struct {
	Name     Scenario
	Template string
}

// DefaultScenarios returns the fixed scenario registry. Registration order
// matters: classification keeps the first scenario on tied scores.
func DefaultScenarios() []ScenarioDefinition {
	return []ScenarioDefinition{
		{Name: ScenarioPriceFilter, Template: "sản phẩm có giá dưới X đồng"},
		{Name: ScenarioBrandFilter, Template: "sản phẩm thương hiệu là X"},
		{Name: ScenarioSearchProducts, Template: "sản phẩm X"},
		{Name: ScenarioProductInfo, Template: "thông tin chi tiết về sản phẩm X"},
	}
}

// ClassificationResult is the outcome of scoring a query against the
// scenario registry. Scenario is nil when every comparison scored zero.
type ClassificationResult struct {
	Scenario   *ScenarioDefinition `json:"scenario,omitempty"`
	Confidence float64             `json:"confidence"`
}

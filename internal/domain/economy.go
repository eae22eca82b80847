package domain

// LifecycleStage is a product's position in its lifecycle
type LifecycleStage string

const (
	StageRawMaterials  LifecycleStage = "Raw Materials"
	StageManufacturing LifecycleStage = "Manufacturing"
	StageDistribution  LifecycleStage = "Distribution"
	StageUse           LifecycleStage = "Use"
	StageEndOfLife     LifecycleStage = "End of Life"
)

// LifecycleStages returns the stages in order
func LifecycleStages() []LifecycleStage {
	return []LifecycleStage{StageRawMaterials, StageManufacturing, StageDistribution, StageUse, StageEndOfLife}
}

// Product is tracked through its lifecycle
type Product struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	LifecycleStage    LifecycleStage `json:"lifecycleStage"`
	CarbonFootprint   float64        `json:"carbonFootprint"`
	Progress          int            `json:"progress"`
	LifecycleProgress int            `json:"lifecycleProgress"`
}

// MaterialListing is a marketplace offer
type MaterialListing struct {
	ID       string  `json:"id"`
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Seller   string  `json:"seller"`
}

// ConsumerProduct carries sustainability guidance for a consumer item
type ConsumerProduct struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	SustainabilityScore int      `json:"sustainabilityScore"`
	Alternatives        []string `json:"alternatives"`
	RepairSuggestions   []string `json:"repairSuggestions"`
}

// KPI is a headline figure on a dashboard card
type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Badge string `json:"badge,omitempty"`
}

// Marketplace is the circular economy hub payload
type Marketplace struct {
	KPIs             []KPI             `json:"kpis"`
	Products         []Product         `json:"products"`
	Listings         []MaterialListing `json:"listings"`
	ConsumerProducts []ConsumerProduct `json:"consumerProducts"`
}

package drug

// Threshold is the minimum stock level configured for a drug name.
type Threshold struct {
	Name     string `yaml:"name"`
	Quantity int64  `yaml:"quantity"`
}

// Description is free text attached to a drug name.
type Description struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

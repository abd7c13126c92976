package config

// InspectorConfig contains the tuning inspector layout
type InspectorConfig struct {
	PanelWidth   int
	RowHeight    int
	ButtonWidth  int
	FontSize     float64
	Padding      int
	Spacing      int
	StartVisible bool
	SaveKey      string // gdata item the inspector saves tuning under
}

// Inspector is the global inspector configuration
var Inspector InspectorConfig

func init() {
	Inspector = InspectorConfig{
		PanelWidth:   320,
		RowHeight:    26,
		ButtonWidth:  28,
		FontSize:     14,
		Padding:      10,
		Spacing:      4,
		StartVisible: false,
		SaveKey:      "tuning",
	}
}

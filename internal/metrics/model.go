package metrics

type Query struct {
	PanelID       int      `json:"panelId"`
	IntervalMS    int64    `json:"intervalMs"`
	Targets       []Target `json:"targets"`
	MaxDataPoints int      `json:"maxDataPoints"`
}

type Target struct {
	RefID  string                 `json:"refId"`
	Target string                 `json:"target"`
	Type   string                 `json:"type"`
	Data   map[string]interface{} `json:"data"`
}

type Series struct {
	Target     string      `json:"target"`
	DataPoints [][]float64 `json:"datapoints"`
}

func NewTable() Table {
	return Table{
		Columns: make([]Column, 0),
		Rows:    make([][]string, 0),
		Type:    "table",
	}
}

type Table struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Type    string     `json:"type"`
}

type Column struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

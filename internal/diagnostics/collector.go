package diagnostics

import (
	"fmt"
)

type Diag struct {
	Message string
}

type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	fmt.Println(diag.Message)
	collector.Diags = append(collector.Diags, diag)
}

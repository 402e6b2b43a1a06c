package analysis

import (
	"github.com/edp1096/calcify/pkg/network"
)

type Analysis interface {
	Setup(net *network.Network) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Network *network.Network
	results map[string][]float64 // key: quantity name, value: result per sweep point
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// StoreResult appends one solved point, tagged with its axis value under
// axisKey when axisKey is not empty.
func (a *BaseAnalysis) StoreResult(axisKey string, axis float64, solution map[string]float64) {
	if axisKey != "" {
		a.results[axisKey] = append(a.results[axisKey], axis)
	}
	for name, value := range solution {
		a.results[name] = append(a.results[name], value)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Package network assembles compartment elements into a modified-nodal
// system and solves it for node concentrations and reservoir fluxes.
package network

import (
	"fmt"
	"io"
	"math"

	"github.com/edp1096/calcify/pkg/compartment"
	"github.com/edp1096/calcify/pkg/matrix"
)

// Network is a linear compartment model. Nodes named "0" or "ref" are the
// zero-concentration reference.
type Network struct {
	name      string
	nodeMap   map[string]int
	branchMap map[string]int
	elements  []compartment.Element
	byName    map[string]compartment.Element
	matrix    *matrix.NodalMatrix
	Status    *compartment.Status
	built     bool
}

func New(name string) *Network {
	return &Network{
		name:      name,
		nodeMap:   make(map[string]int),
		branchMap: make(map[string]int),
		elements:  make([]compartment.Element, 0),
		byName:    make(map[string]compartment.Element),
		Status:    &compartment.Status{Scale: 1},
	}
}

func isReference(node string) bool {
	return node == "0" || node == "ref"
}

// Add registers an element. Elements cannot be added after Build.
func (n *Network) Add(el compartment.Element) error {
	if n.built {
		return fmt.Errorf("network %s: already built", n.name)
	}
	if _, exists := n.byName[el.GetName()]; exists {
		return fmt.Errorf("network %s: duplicate element %s", n.name, el.GetName())
	}
	n.elements = append(n.elements, el)
	n.byName[el.GetName()] = el
	return nil
}

// Build assigns node and branch indices, creates the matrix and performs
// the initial stamp.
func (n *Network) Build() error {
	if n.built {
		return nil
	}
	if len(n.elements) == 0 {
		return fmt.Errorf("network %s: no elements", n.name)
	}

	n.assignNodeBranchMaps()

	size := len(n.nodeMap) + len(n.branchMap)
	mat, err := matrix.New(size)
	if err != nil {
		return fmt.Errorf("network %s: %w", n.name, err)
	}
	n.matrix = mat

	for _, el := range n.elements {
		nodeIndices := make([]int, len(el.GetNodeNames()))
		for i, nodeName := range el.GetNodeNames() {
			if isReference(nodeName) {
				nodeIndices[i] = 0
				continue
			}
			nodeIndices[i] = n.nodeMap[nodeName]
		}
		el.SetNodes(nodeIndices)

		if r, ok := el.(*compartment.Reservoir); ok {
			r.SetBranchIndex(n.branchMap[el.GetName()])
		}
	}

	n.Status = &compartment.Status{Scale: n.conductanceScale()}

	// Initial stamp
	if err := n.Stamp(); err != nil {
		return fmt.Errorf("initial stamping failed: %w", err)
	}
	n.matrix.SetupElements()
	n.built = true

	return nil
}

func (n *Network) assignNodeBranchMaps() {
	for _, el := range n.elements {
		for _, nodeName := range el.GetNodeNames() {
			if isReference(nodeName) {
				continue
			}
			if _, exists := n.nodeMap[nodeName]; !exists {
				n.nodeMap[nodeName] = len(n.nodeMap) + 1
			}
		}
	}

	branchStart := len(n.nodeMap) + 1
	for _, el := range n.elements {
		if _, ok := el.(*compartment.Reservoir); ok {
			n.branchMap[el.GetName()] = branchStart
			branchStart++
		}
	}
}

// conductanceScale is the largest conductance, so stamped values are O(1).
func (n *Network) conductanceScale() float64 {
	scale := 0.0
	for _, el := range n.elements {
		if _, ok := el.(*compartment.Conductance); ok {
			scale = math.Max(scale, math.Abs(el.GetValue()))
		}
	}
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return 1
	}
	return scale
}

func (n *Network) Stamp() error {
	var err error

	for _, el := range n.elements {
		err = el.Stamp(n.matrix, n.Status)
		if err != nil {
			return fmt.Errorf("stamping element %s: %w", el.GetName(), err)
		}
	}
	return nil
}

// Solve restamps the current element values and solves the system.
func (n *Network) Solve() error {
	if !n.built {
		if err := n.Build(); err != nil {
			return err
		}
	}

	n.matrix.Clear()
	if err := n.Stamp(); err != nil {
		return err
	}
	if err := n.matrix.Solve(); err != nil {
		return fmt.Errorf("network %s: %w", n.name, err)
	}
	return nil
}

// SetValue changes an element value between solves.
func (n *Network) SetValue(name string, value float64) error {
	el, ok := n.byName[name]
	if !ok {
		return fmt.Errorf("network %s: element %s not found", n.name, name)
	}
	el.SetValue(value)
	return nil
}

func (n *Network) Element(name string) (compartment.Element, bool) {
	el, ok := n.byName[name]
	return el, ok
}

// GetSolution keys node concentrations as C(node) and reservoir supply
// fluxes as J(reservoir). A positive J means the reservoir delivers ions.
func (n *Network) GetSolution() map[string]float64 {
	solution := make(map[string]float64)
	if n.matrix == nil {
		return solution
	}
	x := n.matrix.Solution()

	for name, idx := range n.nodeMap {
		solution[fmt.Sprintf("C(%s)", name)] = x[idx]
	}
	for name, idx := range n.branchMap {
		solution[fmt.Sprintf("J(%s)", name)] = -x[idx] * n.Status.Scale
	}

	return solution
}

// Concentration returns the solved concentration of a node.
func (n *Network) Concentration(node string) (float64, bool) {
	if isReference(node) {
		return 0, true
	}
	idx, ok := n.nodeMap[node]
	if !ok || n.matrix == nil {
		return 0, false
	}
	return n.matrix.Solution()[idx], true
}

func (n *Network) Name() string { return n.name }

func (n *Network) GetNodeMap() map[string]int { return n.nodeMap }

func (n *Network) GetBranchMap() map[string]int { return n.branchMap }

func (n *Network) GetElements() []compartment.Element { return n.elements }

func (n *Network) PrintSystem(w io.Writer) {
	if n.matrix != nil {
		n.matrix.PrintSystem(w)
	}
}

func (n *Network) Destroy() {
	if n.matrix != nil {
		n.matrix.Destroy()
	}
}

package ui

import "fmt"

// Inspector is a top-left overlay that shows the object under the pointer or being dragged.
// It owns its nodes and updates their text when AppendNodes is called with visible true.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	position *Node
	state    *Node
}

// NewInspector creates an Inspector with nodes styled by the engine's CSS (.inspector, .inspector-title, etc.).
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewNode(TypePanel, "inspector", "", ""),
		title:    NewNode(TypeLabel, "inspector-title", "", "Object"),
		name:     NewNode(TypeLabel, "inspector-name", "", ""),
		position: NewNode(TypeLabel, "inspector-position", "", ""),
		state:    NewNode(TypeLabel, "inspector-state", "", ""),
	}
}

// Selection holds the data shown in the inspector.
// Pass this from the scene layer; ui does not depend on scene.
type Selection struct {
	Name     string
	Position [3]float32
	Radius   float32
	Grabbed  bool
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.name.Text = fmt.Sprintf("Name: %s  (r=%.2f)", sel.Name, sel.Radius)
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	if sel.Grabbed {
		in.state.Text = "State: dragging"
	} else {
		in.state.Text = "State: hovered"
	}
	return append(dst, in.panel, in.title, in.name, in.position, in.state)
}

package ast

// Record is a plain copy of a node and its descendants, suitable for
// serialization.
type Record struct {
	Category string   `json:"category" msgpack:"category"`
	Text     string   `json:"text,omitempty" msgpack:"text,omitempty"`
	Line     int      `json:"line,omitempty" msgpack:"line,omitempty"`
	Column   int      `json:"column,omitempty" msgpack:"column,omitempty"`
	Children []Record `json:"children,omitempty" msgpack:"children,omitempty"`
}

// Snapshot copies a tree into a Record
func Snapshot(n *Node) Record {
	rec := Record{
		Category: n.cat.String(),
		Text:     n.text,
		Line:     n.line,
		Column:   n.col,
	}
	for _, child := range n.children {
		rec.Children = append(rec.Children, Snapshot(child))
	}
	return rec
}

// SnapshotAll copies a list of nodes, typically the output of the tokenizer
func SnapshotAll(nodes []*Node) []Record {
	recs := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		recs = append(recs, Snapshot(n))
	}
	return recs
}

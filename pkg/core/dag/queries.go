package dag

// Dependents returns the targets of all edges whose source is id, in edge
// order. Duplicate edges produce duplicate entries. The result is empty,
// never nil, when id has no outgoing edges.
func Dependents(edges []Edge, id string) []string {
	out := []string{}
	for _, e := range edges {
		if e.Source == id {
			out = append(out, e.Target)
		}
	}
	return out
}

// Prerequisites returns the sources of all edges whose target is id, in edge
// order. Duplicate edges produce duplicate entries. The result is empty,
// never nil, when id has no incoming edges.
func Prerequisites(edges []Edge, id string) []string {
	out := []string{}
	for _, e := range edges {
		if e.Target == id {
			out = append(out, e.Source)
		}
	}
	return out
}

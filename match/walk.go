package match

// Regexes collects regular expressions of the matcher tree in query order
func Regexes(node Node) []*Regex {
	var result []*Regex

	var value func(Value)
	value = func(v Value) {
		switch v := v.(type) {
		case *Regex:
			result = append(result, v)
		case *ValueUnion:
			for _, child := range v.Values {
				value(child)
			}
		case *ValueInter:
			for _, child := range v.Values {
				value(child)
			}
		case *ValueNeg:
			value(v.Value)
		}
	}

	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Union:
			for _, child := range n.Children {
				walk(child)
			}
		case *Inter:
			for _, child := range n.Children {
				walk(child)
			}
		case *Neg:
			walk(n.Child)
		case *Tag:
			value(n.Value)
		}
	}

	walk(node)
	return result
}

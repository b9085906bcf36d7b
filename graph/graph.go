// Package graph renders matcher trees as graphviz graphs
package graph

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/qlquery/qlquery/match"
)

const graphName = "query"

type builder struct {
	graph   *gographviz.Escape
	counter int
}

// BuildGraph builds graph of matcher tree, layout is either "horizontal" or "vertical"
func BuildGraph(node match.Node, layout string) (gographviz.Interface, error) {
	b := &builder{graph: gographviz.NewEscape()}

	if err := b.graph.SetDir(true); err != nil {
		return nil, err
	}
	if err := b.graph.SetName(graphName); err != nil {
		return nil, err
	}

	rankdir := "LR"
	switch layout {
	case "vertical":
		rankdir = "TB"
	case "horizontal", "":
	default:
		return nil, fmt.Errorf("unknown layout %q, expected horizontal or vertical", layout)
	}
	if err := b.graph.AddAttr(graphName, "rankdir", rankdir); err != nil {
		return nil, err
	}

	if _, err := b.node(node); err != nil {
		return nil, err
	}

	return b.graph, nil
}

func (b *builder) add(label, shape, color string) (string, error) {
	name := fmt.Sprintf("n%d", b.counter)
	b.counter++

	err := b.graph.AddNode(graphName, name, map[string]string{
		"shape":     shape,
		"style":     "filled",
		"fillcolor": color,
		"label":     label,
	})
	return name, err
}

func (b *builder) edge(from, to, label string) error {
	attrs := map[string]string{}
	if label != "" {
		attrs["label"] = label
	}
	return b.graph.AddEdge(from, to, true, attrs)
}

func (b *builder) children(label, color string, children []match.Node) (string, error) {
	name, err := b.add(label, "circle", color)
	if err != nil {
		return "", err
	}

	for _, child := range children {
		childName, err := b.node(child)
		if err != nil {
			return "", err
		}
		if err = b.edge(name, childName, ""); err != nil {
			return "", err
		}
	}

	return name, nil
}

func (b *builder) node(node match.Node) (string, error) {
	switch n := node.(type) {
	case *match.True:
		return b.add("everything", "box", "gray90")
	case *match.False:
		return b.add("nothing", "box", "gray90")
	case *match.Union:
		return b.children("|", "lightblue", n.Children)
	case *match.Inter:
		return b.children("&", "lightblue", n.Children)
	case *match.Neg:
		return b.children("!", "salmon", []match.Node{n.Child})
	case *match.Tag:
		name, err := b.add(strings.Join(n.Names(), ", "), "box", "mediumseagreen")
		if err != nil {
			return "", err
		}
		valueName, err := b.value(n.Value)
		if err != nil {
			return "", err
		}
		return name, b.edge(name, valueName, "=")
	case *match.Numcmp:
		return b.add(fmt.Sprintf("#(%s %s %s)", n.Left, n.Op, n.Right), "box", "darkgoldenrod1")
	case *match.Extension:
		body := ""
		if n.RawBody != nil {
			body = ": " + strings.TrimSpace(*n.RawBody)
		}
		return b.add(fmt.Sprintf("@(%s%s)", n.Name, body), "hexagon", "plum")
	}

	return b.add(node.String(), "box", "white")
}

func (b *builder) valueChildren(label, color string, values []match.Value) (string, error) {
	name, err := b.add(label, "circle", color)
	if err != nil {
		return "", err
	}

	for _, value := range values {
		childName, err := b.value(value)
		if err != nil {
			return "", err
		}
		if err = b.edge(name, childName, ""); err != nil {
			return "", err
		}
	}

	return name, nil
}

func (b *builder) value(value match.Value) (string, error) {
	switch v := value.(type) {
	case *match.Regex:
		return b.add(fmt.Sprintf("/%s/%s", v.Pattern, v.Mods), "note", "lightyellow")
	case *match.ValueUnion:
		return b.valueChildren("|", "lightblue", v.Values)
	case *match.ValueInter:
		return b.valueChildren("&", "lightblue", v.Values)
	case *match.ValueNeg:
		return b.valueChildren("!", "salmon", []match.Value{v.Value})
	}

	return b.add(value.String(), "note", "white")
}

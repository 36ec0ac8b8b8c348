package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/gtfo/ast"
)

// DumpYAML returns the outline of a tree (see ast.Outline) as YAML.
func DumpYAML(n ast.Node) ([]byte, error) {
	out, err := yaml.Marshal(ast.OutlineOf(n))
	if err != nil {
		return nil, fmt.Errorf("dumping %s tree: %w", kindName(n), err)
	}
	return out, nil
}

// LoadOutline reads an outline previously written by DumpYAML.
func LoadOutline(data []byte) (ast.Outline, error) {
	var o ast.Outline
	if err := yaml.Unmarshal(data, &o); err != nil {
		return ast.Outline{}, fmt.Errorf("reading outline: %w", err)
	}
	return o, nil
}

func kindName(n ast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}

package anim

import (
	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/tree"
)

func zeroSheet() parsed.StyleSheet {
	return parsed.StyleSheet{Keyframes: map[string]parsed.Keyframes{}}
}

func testID(line int) tree.ID {
	return tree.ID{Pos: tree.Position{Line: line, Col: 1}}
}

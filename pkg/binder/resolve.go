package binder

import (
	"strconv"
	"strings"
)

// pathSeg is one step of a canonical model path: either a map key or an
// array index, matching the "list[2].name" syntax template.Schema.Resolve
// produces.
type pathSeg struct {
	key     string
	index   int
	isIndex bool
}

func splitPath(path string) []pathSeg {
	var segs []pathSeg
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return segs
			}
			n, _ := strconv.Atoi(path[i+1 : i+end])
			segs = append(segs, pathSeg{index: n, isIndex: true})
			i += end + 1
		default:
			next := strings.IndexAny(path[i:], ".[")
			if next < 0 {
				segs = append(segs, pathSeg{key: path[i:]})
				i = len(path)
			} else {
				segs = append(segs, pathSeg{key: path[i : i+next]})
				i += next
			}
		}
	}
	return segs
}

// ResolvePath walks model (decoded JSON: map[string]any/[]any/leaf) along a
// canonical path as produced by template.Schema.Resolve (e.g.
// "todo[2].name"), returning the value found there and whether the walk
// reached it. Used to resolve a Handler's ArgPath against the current model
// when assembling a Call (spec.md §4.6).
func ResolvePath(model any, path string) (any, bool) {
	if path == "" {
		return model, true
	}
	cur := model
	for _, seg := range splitPath(path) {
		if seg.isIndex {
			arr, ok := cur.([]any)
			if !ok || seg.index < 0 || seg.index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.index]
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := obj[seg.key]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

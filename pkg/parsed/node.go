// Package parsed defines the contract kiln consumes instead of parsing
// HTML/CSS itself (spec.md §1: parsing is an external collaborator). A host
// parser — built the way golang.org/x/net/html or withastro/compiler build
// theirs — produces these types; kiln only ever walks them.
package parsed

// Position locates a node in its source template, reused by pkg/tree for
// stable node identity across reparses.
type Position struct {
	Line int
	Col  int
}

// AttrValue is an attribute's value, optionally an interpolation binding
// ("attr=\"{expr}\"" in the template grammar, spec.md §4.1/§6).
type AttrValue struct {
	Literal    string
	Expression string // non-empty if this attribute is a `{expr}` binding
}

// Attr is one attribute on a parsed element.
type Attr struct {
	Name  string
	Value AttrValue
}

// TextChunk is one piece of a text node's interpolation-split content
// (spec.md §4.1: text interpolation splits into literal/expression spans).
type TextChunk struct {
	Literal    string
	Expression string // non-empty if this chunk is a `{expr}` placeholder
}

// Directives captures the reserved structural attributes recognized by the
// template grammar (spec.md §6): ?name / !name / *item+count / @name=expr /
// on<event>=fn(arg).
type Directives struct {
	// Visible/Hidden hold the bound expression for ?name / !name. At most
	// one is set; RenderError if both are.
	Visible string
	Hidden  string

	// Repeat holds the *item alias and the bound list expression; Count is
	// the optional literal `count="N"` ceiling (0 means "use the engine
	// default").
	RepeatAlias string
	RepeatList  string
	RepeatCount int

	// Alias holds zero or more @name="expr" rebindings declared on this
	// node, applied to its subtree and popped on exit.
	Alias map[string]string

	// Events maps an event name ("click", "input", "change", "blur") to the
	// raw "fn(argExpr)" text, which pkg/interact looks up by that name; the
	// renderer splits function name, argument path, and pipe chain from it.
	Events map[string]string
}

// NodeKind distinguishes element nodes from text nodes in the parsed tree.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindText
)

// Node is one already-parsed syntax tree node: an element with attributes,
// directives and children, or a text node with interpolation chunks.
// Children are an ordered slice (not sibling-linked) since kiln only ever
// walks a tree that already exists in full.
type Node struct {
	Kind     NodeKind
	Pos      Position
	Tag      string // KindElement only
	Attrs    []Attr // KindElement only
	Dirs     Directives
	// InlineStyle holds the node's parsed style="..." attribute, if any
	// (KindElement only): declarations in the same shape a stylesheet Rule
	// carries, so the cascade can run them through the same declaration
	// pass it uses for matched rules.
	InlineStyle []Declaration
	Text        []TextChunk // KindText only
	Children    []*Node     // KindElement only
}

// voidTags is the set of tags that never receive HTML children (spec.md
// §6). img and input are the two the renderer pre-populates with
// structural children of its own (spec.md §4.1).
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "command": true,
	"embed": true, "hr": true, "img": true, "input": true, "keygen": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// IsVoid reports whether tag is one of the template grammar's void tags.
func IsVoid(tag string) bool {
	return voidTags[tag]
}

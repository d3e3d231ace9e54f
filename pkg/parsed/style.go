package parsed

// Token is one already-lexed CSS value token (spec.md §4.3: "a shorthand
// expression of tokens"). Kind selects which field is meaningful.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenDimension
	TokenPercentage
	TokenNumber
	TokenColorHex
	TokenFunction
	TokenVarRef
	TokenTime
	TokenString
)

// Token is a single value-grammar token as produced by a host CSS
// tokenizer.
type Token struct {
	Kind     TokenKind
	Keyword  string
	Number   float64
	Unit     string  // dimension unit, e.g. "px", "em"; time unit "s"/"ms"
	Hex      string  // TokenColorHex, without leading '#'
	Function string  // TokenFunction: function name, e.g. "rgb"
	Args     []Token // TokenFunction: argument tokens
	VarName  string  // TokenVarRef: the "--x" in var(--x)
	VarFallback []Token
	Str      string // TokenString
}

// Declaration is one `property: token token ...;` pair.
type Declaration struct {
	Property string
	Value    []Token
	Custom   bool // true if Property starts with "--"
}

// SelectorCombinator precedes a SelectorComponent, describing how it
// relates to the component before it (empty/implicit means descendant).
type SelectorCombinator string

const (
	CombinatorDescendant SelectorCombinator = ""
	CombinatorChild      SelectorCombinator = ">"
	CombinatorAdjacent   SelectorCombinator = "+"
	// Any other combinator token is unsupported (spec.md §4.3) and causes
	// the whole selector to fail to match; nothing is logged for it.
)

// AttrMatch is the comparison mode of an attribute selector component.
type AttrMatch int

const (
	AttrPresent AttrMatch = iota
	AttrEquals
	AttrIncludes // [attr~=val]
	AttrDash     // [attr|=val]
	AttrPrefix   // [attr^=val]
	AttrSubstr   // [attr*=val]
	AttrSuffix   // [attr$=val]
)

// SelectorComponent is one compound component of a selector (matched
// right-to-left against the tree, spec.md §4.3).
type SelectorComponent struct {
	Combinator SelectorCombinator
	Universal  bool
	Type       string   // tag name, empty if none
	ID         string   // empty if none
	Classes    []string
	Attr       *AttrSelector
	Root       bool // :root
	PseudoClass string // "hover","active","focus","checked","nth-child(2)","nth-child(even)","nth-child(odd)"
}

// AttrSelector is an attribute-presence/comparison selector component.
type AttrSelector struct {
	Name  string
	Match AttrMatch
	Value string
}

// Selector is a sequence of components, rightmost last, exactly as authored
// ("div.card > span:hover" becomes [div.card, >span:hover] in source order,
// matched starting from the last component).
type Selector struct {
	Components []SelectorComponent
}

// Rule is one style rule: a set of alternative selectors sharing a
// declaration block.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// KeyframeStep is one `step { decls }` entry in an @keyframes block. Step is
// in [0,100]; `from` parses to 0, `to` parses to 100.
type KeyframeStep struct {
	Step         float64
	Declarations []Declaration
}

// Keyframes is one named @keyframes block.
type Keyframes struct {
	Name  string
	Steps []KeyframeStep
}

// StyleSheet is the full already-parsed stylesheet: ordered rules (cascade
// order is source order, later rules of equal specificity win - specificity
// itself is out of scope per spec.md's deliberately small matcher, rules
// are applied in order for any node they match) plus keyframes and
// top-level custom properties.
type StyleSheet struct {
	Rules     []Rule
	Keyframes map[string]Keyframes
	Vars      map[string][]Token
}

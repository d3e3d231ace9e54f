// Package kiln turns an already-parsed HTML-like template and CSS-like
// stylesheet into a flat list of laid-out, styled rectangles plus outbound
// handler calls, one Update call per frame (spec.md §1/§2/§5).
package kiln

import (
	"os"
	"time"

	"github.com/kiln-ui/kiln/pkg/anim"
	"github.com/kiln-ui/kiln/pkg/binder"
	"github.com/kiln-ui/kiln/pkg/interact"
	"github.com/kiln-ui/kiln/pkg/layout"
	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/style"
	"github.com/kiln-ui/kiln/pkg/telemetry"
	"github.com/kiln-ui/kiln/pkg/template"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// Loader re-parses a template/stylesheet source pair. It is supplied by the
// host: HTML/CSS parsing is an external collaborator (spec.md §1), so View
// never parses bytes itself — it only decides WHEN to call Loader again, by
// stat-polling the source paths a hot-reload-enabled View was given.
type Loader func() (*parsed.Node, parsed.StyleSheet, error)

// Input is one frame's external input (spec.md §6). The embedded
// interact.Input carries the mouse/keyboard/character fields verbatim,
// since pkg/interact already owns that shape and the interaction resolver
// is the only consumer of most of it.
type Input struct {
	Viewport layout.Viewport
	Value    any
	Fonts    layout.Fonts // optional; falls back to the View's configured Fonts

	interact.Input
}

// Output is one frame's result (spec.md §6): the flat, traversal-ordered
// element list ready for drawing, and the outbound handler calls produced
// by this frame's interaction pass.
type Output struct {
	Elements []tree.Element
	Calls    []interact.Call
}

// View is the engine core: one long-lived instance per template+stylesheet
// pair, mutated in place by each Update call (spec.md §5 — single-threaded,
// cooperative, no internal goroutines/locks/timers).
type View struct {
	sizes      style.Sizes
	renderOpts template.Options
	pipes      *binder.PipeRegistry
	fonts      layout.Fonts

	reporter telemetry.Reporter
	metrics  telemetry.Metrics

	hotReload *hotReloadConfig

	tr       *tree.Tree
	sheet    parsed.StyleSheet
	bindings *template.Bindings
	vm       *binder.ViewModel
	engine   *anim.Engine
	cascade  *style.Cascade
	resolver *interact.Resolver
}

type hotReloadConfig struct {
	templatePath, stylePath string
	loader                  Loader
	templateModTime         time.Time
	styleModTime            time.Time
}

// Option configures a View at construction time, mirroring the teacher's
// ComponentBuilder functional-options idiom
// (pkg/core/component_factory.go's WithRender/WithInit/...).
type Option func(*View)

// WithFonts supplies the host's text-measurement capability (spec.md §6).
// Without it, View falls back to layout.FallbackFonts.
func WithFonts(f layout.Fonts) Option {
	return func(v *View) { v.fonts = f }
}

// WithRootFontSize sets the root/initial parent font size (px) the cascade
// resolves rem/em units against. Default 16, matching style.DefaultSizes.
func WithRootFontSize(px float64) Option {
	return func(v *View) {
		v.sizes.RootFontSize = px
		v.sizes.ParentFontSize = px
	}
}

// WithDefaultRepeatMax overrides the repeat ceiling a *item directive falls
// back to when it omits count="N" (spec.md §4.1). Default 64.
func WithDefaultRepeatMax(n int) Option {
	return func(v *View) { v.renderOpts.DefaultRepeatMax = n }
}

// WithPipe registers an additional named pipe for "fn(arg|pipe)" handler
// expressions (spec.md §4.6), alongside the built-in upper/lower/trim/int.
func WithPipe(name string, p binder.Pipe) Option {
	return func(v *View) { v.pipes.Register(name, p) }
}

// WithReporter overrides the view's error reporter (default:
// telemetry.GetReporter(), the process-wide configured one, which is a
// no-op sink until a host calls telemetry.SetReporter).
func WithReporter(r telemetry.Reporter) Option {
	return func(v *View) { v.reporter = r }
}

// WithMetrics overrides the view's metrics sink (default:
// telemetry.GetMetrics(), the process-wide configured one, a no-op by
// default).
func WithMetrics(m telemetry.Metrics) Option {
	return func(v *View) { v.metrics = m }
}

// WithSourcePaths enables optional hot-reload (spec.md §5): each Update
// call stats templatePath/stylePath; when either's modification time
// advances, the view calls loader and reconstructs its derived state from
// the result, discarding the old tree but preserving focus and scroll
// offsets by element id where the new tree still has that id.
func WithSourcePaths(templatePath, stylePath string, loader Loader) Option {
	return func(v *View) {
		v.hotReload = &hotReloadConfig{templatePath: templatePath, stylePath: stylePath, loader: loader}
	}
}

// NewView renders root and loads sheet, returning a View ready for Update.
// A malformed template (e.g. conflicting ?/! directives) fails construction and is
// returned to the caller, per spec.md §7's "load-time parse errors fail the
// construction operation".
func NewView(root *parsed.Node, sheet parsed.StyleSheet, opts ...Option) (*View, error) {
	v := &View{
		sizes:      style.DefaultSizes(),
		renderOpts: template.DefaultOptions(),
		pipes:      binder.NewPipeRegistry(),
		fonts:      layout.FallbackFonts{},
		reporter:   telemetry.GetReporter(),
		metrics:    telemetry.GetMetrics(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.hotReload != nil {
		if stat, err := os.Stat(v.hotReload.templatePath); err == nil {
			v.hotReload.templateModTime = stat.ModTime()
		}
		if stat, err := os.Stat(v.hotReload.stylePath); err == nil {
			v.hotReload.styleModTime = stat.ModTime()
		}
	}
	if err := v.load(root, sheet); err != nil {
		return nil, err
	}
	return v, nil
}

// load (re)builds every piece of derived state from a template/stylesheet
// pair: the tree+bindings (template.Render), the reactive binder, the
// animation engine, and the cascade's tree-bound matcher. Called once from
// NewView and again from checkHotReload whenever a watched source's mtime
// advances. The previous tree's focus and scroll offsets are preserved by
// element id where the new tree still has that id (SPEC_FULL.md §5).
func (v *View) load(root *parsed.Node, sheet parsed.StyleSheet) error {
	tr, bindings, err := template.Render(root, v.renderOpts)
	if err != nil {
		return err
	}

	var savedScroll map[tree.ID]tree.ScrollState
	var savedFocus tree.ID
	hasSavedFocus := false
	if v.tr != nil {
		savedScroll = snapshotScroll(v.tr)
		if v.resolver != nil {
			savedFocus, hasSavedFocus = v.resolver.Focus()
		}
	}

	v.tr = tr
	v.sheet = sheet
	v.bindings = bindings
	v.vm = binder.New(bindings, v.diffLogger())
	v.engine = anim.NewEngine(sheet, v.sizes)
	v.cascade = &style.Cascade{
		Sheet:   sheet,
		Sizes:   v.sizes,
		Matcher: &treeMatcher{tr: tr},
		Anim:    v.engine,
		Log:     v.cascadeLogger(),
	}
	if v.resolver == nil {
		v.resolver = interact.NewResolver(v.pipes)
	}

	restoreScroll(tr, savedScroll)
	if hasSavedFocus && tr.Contains(savedFocus) {
		v.resolver.SetFocus(savedFocus)
	}

	return nil
}

// snapshotScroll captures the current scroll offset of every scrollable
// element, keyed by id, before the tree that owns them is discarded.
func snapshotScroll(tr *tree.Tree) map[tree.ID]tree.ScrollState {
	out := map[tree.ID]tree.ScrollState{}
	_ = tr.Walk(func(el *tree.Element) error {
		if el.Scroll != nil {
			out[el.ID] = *el.Scroll
		}
		return nil
	})
	return out
}

// restoreScroll seeds tr's elements with previously saved offsets. The max
// bounds are left at zero; layout.Run's refreshScrollAndClip recomputes and
// clamps them the moment this frame's layout pass runs.
func restoreScroll(tr *tree.Tree, saved map[tree.ID]tree.ScrollState) {
	for id, s := range saved {
		el, err := tr.Get(id)
		if err != nil {
			continue
		}
		el.Scroll = &tree.ScrollState{OffsetX: s.OffsetX, OffsetY: s.OffsetY}
	}
}

// checkHotReload stats the configured source paths and reloads when either
// advanced, per spec.md §5's "the update cycle stats them" polling model —
// not fsnotify, which would need its own goroutine (DESIGN.md explains the
// rejection).
func (v *View) checkHotReload() {
	hr := v.hotReload
	if hr == nil {
		return
	}
	tstat, terr := os.Stat(hr.templatePath)
	sstat, serr := os.Stat(hr.stylePath)
	if terr != nil || serr != nil {
		return
	}
	if !tstat.ModTime().After(hr.templateModTime) && !sstat.ModTime().After(hr.styleModTime) {
		return
	}
	root, sheet, err := hr.loader()
	if err != nil {
		v.reportError("hot-reload", "", err)
		return
	}
	if err := v.load(root, sheet); err != nil {
		v.reportError("hot-reload", "", err)
		return
	}
	hr.templateModTime = tstat.ModTime()
	hr.styleModTime = sstat.ModTime()
}

// Update runs one frame of the five-stage pipeline (spec.md §2): bind the
// model, apply reactions, cascade, layout, resolve interaction. It is the
// only mutating entry point; between calls the view is quiescent (§5).
func (v *View) Update(in Input) Output {
	v.checkHotReload()

	reactions := v.vm.Bind(in.Value)
	v.applyReactions(reactions)

	v.engine.Tick(in.Time.Seconds())

	styles, err := v.cascade.Run(v.tr)
	if err != nil {
		v.metrics.RenderError("CascadeTraversal")
		v.reportError("cascade", "", err)
		return Output{}
	}

	if err := v.engine.Sync(v.tr); err != nil {
		v.metrics.SubtreeSkipped()
		v.reportError("anim-sync", "", err)
	}

	fonts := v.fonts
	if in.Fonts != nil {
		fonts = in.Fonts
	}
	if err := layout.Run(v.tr, styles, fonts, in.Viewport); err != nil {
		v.metrics.LayoutFailure()
		v.reportError("layout", "", err)
		return Output{}
	}

	calls, err := v.resolver.Resolve(v.tr, in.Value, in.Input)
	if err != nil {
		v.metrics.SubtreeSkipped()
		v.reportError("interact", "", err)
		calls = nil
	}

	return Output{Elements: v.collectElements(), Calls: calls}
}

// applyReactions mutates the tree per spec.md §4.2's table (edit text span,
// toggle visibility, rewrite attribute, resize repeat region). Each
// reaction addresses its node independently; one addressing a node that no
// longer exists is logged and skipped rather than aborting the rest of the
// batch, per spec.md §7's log-and-skip policy.
func (v *View) applyReactions(reactions []binder.Reaction) {
	for _, r := range reactions {
		if err := v.applyReaction(r); err != nil {
			v.metrics.RenderError("ReactionTargetMissing")
			v.reportError("apply-reaction", "", err)
		}
	}
}

func (v *View) applyReaction(r binder.Reaction) error {
	switch r.Kind {
	case binder.ReactText:
		el, err := v.tr.Get(r.Node)
		if err != nil {
			return err
		}
		if r.SpanIndex < 0 || r.SpanIndex >= len(el.Spans) {
			return &tree.ElementNotFoundError{ID: r.Node}
		}
		el.Spans[r.SpanIndex].Text = r.Text
	case binder.ReactVisibility:
		el, err := v.tr.Get(r.Node)
		if err != nil {
			return err
		}
		el.Visible = r.Visible
	case binder.ReactAttribute:
		el, err := v.tr.Get(r.Node)
		if err != nil {
			return err
		}
		el.Attrs[r.Attr] = r.Value
	case binder.ReactRepeat:
		for i := r.Start; i < r.End; i++ {
			child, err := v.tr.ChildAt(r.Node, i)
			if err != nil {
				return err
			}
			child.Visible = i < r.Cursor
		}
	}
	return nil
}

// collectElements walks tr parent-first, omitting an invisible element and
// its entire subtree (spec.md §3: "omitted from Output.Elements"), mirroring
// pkg/layout's visibleChildren filter rather than pkg/tree.Walk's flat
// insertion-order pass (which has no notion of "subtree").
func (v *View) collectElements() []tree.Element {
	var out []tree.Element
	if err := v.collectVisible(v.tr.Root, &out); err != nil {
		v.metrics.SubtreeSkipped()
		v.reportError("collect-elements", "", err)
	}
	return out
}

func (v *View) collectVisible(id tree.ID, out *[]tree.Element) error {
	el, err := v.tr.Get(id)
	if err != nil {
		return err
	}
	if !el.Visible {
		return nil
	}
	*out = append(*out, *el)
	children, err := v.tr.Children(id)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := v.collectVisible(c.ID, out); err != nil {
			return err
		}
	}
	return nil
}

func (v *View) diffLogger() binder.Logger {
	return func(path, reason string) {
		v.metrics.RenderError("DiffSkip")
		v.reportError("bind", path, nil, telemetry.Breadcrumb{Category: "bind", Message: reason})
	}
}

func (v *View) cascadeLogger() func(nodeID tree.ID, property string, err error) {
	return func(nodeID tree.ID, property string, err error) {
		v.metrics.CascadeError(cascadeErrorKind(err))
		if v.reporter != nil {
			v.reporter.ReportError(err, &telemetry.ErrorContext{
				Stage:       "cascade",
				NodeID:      nodeID.String(),
				Property:    property,
				Timestamp:   time.Now(),
				Breadcrumbs: telemetry.Breadcrumbs(),
			})
		}
	}
}

func cascadeErrorKind(err error) string {
	ce, ok := err.(*style.CascadeError)
	if !ok {
		return "Unknown"
	}
	switch ce.Kind {
	case style.ErrInvalidKeyword:
		return "InvalidKeyword"
	case style.ErrInvalidColor:
		return "ValueNotSupported"
	case style.ErrInvalidLength:
		return "DimensionUnitsNotSupported"
	case style.ErrUnresolvedVar:
		return "VariableNotFound"
	case style.ErrUnsupportedUnit:
		return "DimensionUnitsNotSupported"
	case style.ErrUnsupportedCombinator:
		return "PropertyNotSupported"
	default:
		return "Unknown"
	}
}

// reportError records a breadcrumb (when extras are given) and forwards err
// (when non-nil) to the view's configured telemetry.Reporter. Stage/nodeID
// here are spec.md §7's error-context fields, not the "the spec" kind of
// reference — they just say where in the pipeline this happened.
func (v *View) reportError(stage, nodeID string, err error, extra ...telemetry.Breadcrumb) {
	for _, b := range extra {
		telemetry.RecordBreadcrumb(b.Category, b.Message, b.Data)
	}
	if err == nil || v.reporter == nil {
		return
	}
	v.reporter.ReportError(err, &telemetry.ErrorContext{
		Stage:       stage,
		NodeID:      nodeID,
		Timestamp:   time.Now(),
		Breadcrumbs: telemetry.Breadcrumbs(),
	})
}

// treeMatcher adapts a *tree.Tree to style.Matcher: structural lookups
// delegate straight through, and pseudo-classes read the per-node
// InteractionState the interaction resolver maintains (spec.md §4.3's
// ":hover"/":active"/":focus"/":checked" set).
type treeMatcher struct {
	tr *tree.Tree
}

func (m *treeMatcher) Parent(id tree.ID) (tree.ID, error)           { return m.tr.Parent(id) }
func (m *treeMatcher) Children(id tree.ID) ([]*tree.Element, error) { return m.tr.Children(id) }
func (m *treeMatcher) Get(id tree.ID) (*tree.Element, error)        { return m.tr.Get(id) }

func (m *treeMatcher) PseudoClasses(id tree.ID) map[string]bool {
	el, err := m.tr.Get(id)
	if err != nil {
		return nil
	}
	return map[string]bool{
		"hover":  el.State.Hover,
		"active": el.State.Active,
		"focus":  el.State.Focus,
		"checked": el.State.Checked,
	}
}

package wirework

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Template produces the templ output for a view from its serialized data.
type Template func(data map[string]any) templ.Component

// ViewOptions configures a view at construction.
//
// Model and Collection feed SerializeData; when both are set the model
// wins. Template set here is the per-construction override and beats any
// instance-level default installed with SetDefaultTemplate. Helpers and
// Triggers follow the Prop convention (static value or producer).
type ViewOptions struct {
	Model      any
	Collection any

	Template Prop[Template]
	Helpers  Prop[map[string]any]
	Triggers Prop[TriggerMap]

	// DOMEvents is the declarative DOM event map. Trigger-derived handlers
	// are layered on top of it before delegation; on a descriptor collision
	// the trigger wins.
	DOMEvents map[string]DOMHandler

	// Region detaches the view from its rendered output during Close.
	Region Region

	// Lifecycle hooks. OnShow runs when "show" is emitted on the view;
	// BeforeClose and OnClose bracket the detach step of Close.
	OnShow      func()
	BeforeClose func()
	OnClose     func()
}

// View is a transient UI object: a Binder for subscriptions it holds on
// other emitters, an embedded Events surface for events it exposes to
// others, and a templating contract.
//
// Lifecycle: constructed, zero or more renders, shown, closed. Close is
// terminal and idempotent; a closed view is not reusable.
type View struct {
	*Events

	binder *Binder

	model      any
	collection any

	defaultTemplate Prop[Template]
	template        Prop[Template]

	helpers   Prop[map[string]any]
	triggers  Prop[TriggerMap]
	domEvents map[string]DOMHandler

	region Region

	onShow      func()
	beforeClose func()
	onClose     func()

	closed bool
}

// NewView constructs a view from opts. The view immediately binds to its
// own "show" event through its Binder, so OnShow (or the default no-op)
// runs without any further wiring when Show is called.
func NewView(opts ViewOptions) *View {
	v := &View{
		Events:      NewEvents(),
		model:       opts.Model,
		collection:  opts.Collection,
		template:    opts.Template,
		helpers:     opts.Helpers,
		triggers:    opts.Triggers,
		domEvents:   opts.DOMEvents,
		region:      opts.Region,
		onShow:      opts.OnShow,
		beforeClose: opts.BeforeClose,
		onClose:     opts.OnClose,
	}
	v.binder = NewBinder(v)
	v.binder.Bind(v.Events, "show", v.handleShow, v)
	return v
}

// handleShow is the default "show" listener. No-op unless OnShow was set.
func (v *View) handleShow(args ...any) {
	if v.onShow != nil {
		v.onShow()
	}
}

// SetDefaultTemplate installs the instance-level template, used when no
// construction-time override was given.
func (v *View) SetDefaultTemplate(t Prop[Template]) {
	v.defaultTemplate = t
}

// Template returns the construction-time override if present, else the
// instance-level default. Pure accessor; the second return is false when
// neither is configured.
func (v *View) Template() (Template, bool) {
	if t, ok := v.template.Resolve(); ok {
		return t, true
	}
	return v.defaultTemplate.Resolve()
}

// SerializeData produces the data handed to the template. The model's data
// is the base when present; otherwise a collection serializes under
// "items"; with neither the base is empty. Template helpers are then
// shallow-merged on top, helper keys winning.
func (v *View) SerializeData() (map[string]any, error) {
	var data map[string]any
	switch {
	case v.model != nil:
		d, err := AsData(v.model)
		if err != nil {
			return nil, err
		}
		data = d
	case v.collection != nil:
		items, err := AsItems(v.collection)
		if err != nil {
			return nil, err
		}
		data = map[string]any{"items": items}
	}
	return v.MixinTemplateHelpers(data), nil
}

// MixinTemplateHelpers resolves the view's helpers and shallow-merges them
// into target, creating target when nil. Returns the merged result.
func (v *View) MixinTemplateHelpers(target map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any)
	}
	helpers, ok := v.helpers.Resolve()
	if !ok {
		return target
	}
	for k, val := range helpers {
		target[k] = val
	}
	return target
}

// ConfigureTriggers resolves the view's trigger map and wraps each entry
// into a DOM handler that suppresses the raw event where supported and
// emits the semantic event on the view.
//
// Returns nil when no triggers were configured. A trigger map that
// resolves to an explicitly empty mapping yields an empty, non-nil result.
func (v *View) ConfigureTriggers() map[string]DOMHandler {
	tm, ok := v.triggers.Resolve()
	if !ok {
		return nil
	}
	handlers := make(map[string]DOMHandler, len(tm))
	for descriptor, event := range tm {
		handlers[descriptor] = triggerHandler(v.Events, event)
	}
	return handlers
}

// DelegateEvents hands the view's merged DOM event map to d: the
// declarative DOMEvents with trigger-derived handlers layered on top.
func (v *View) DelegateEvents(d Delegator) {
	d.Delegate(mergeDOMEvents(v.domEvents, v.ConfigureTriggers()))
}

// Render resolves the template, serializes the view's data, and writes the
// rendered output to w. Returns ErrNoTemplate when no template is
// configured.
func (v *View) Render(ctx context.Context, w io.Writer) error {
	t, ok := v.Template()
	if !ok {
		return ErrNoTemplate
	}
	data, err := v.SerializeData()
	if err != nil {
		return err
	}
	return t(data).Render(ctx, w)
}

// Show emits the "show" semantic event on the view.
func (v *View) Show() {
	v.Emit("show")
}

// Bind tracks a subscription to event on source through the view's Binder.
// A nil context defaults to the view itself.
func (v *View) Bind(source Emitter, event string, fn Listener, context any) *Subscription {
	return v.binder.Bind(source, event, fn, context)
}

// Unbind releases one tracked subscription.
func (v *View) Unbind(sub *Subscription) {
	v.binder.Unbind(sub)
}

// UnbindAll releases every subscription the view holds on other emitters.
func (v *View) UnbindAll() {
	v.binder.UnbindAll()
}

// Binder returns the view's subscription ledger.
func (v *View) Binder() *Binder {
	return v.binder
}

// Closed reports whether Close has run.
func (v *View) Closed() bool {
	return v.closed
}

// Close tears the view down. The ordering is fixed: beforeClose, detach
// from the rendered output, onClose, emit "close", release tracked
// subscriptions, remove the view's own listeners. Close-time hooks and
// "close" listeners observe a detached view whose subscriptions are still
// live, so they can read state from bound models one last time.
//
// Close is idempotent; calls after the first do nothing.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true

	if v.beforeClose != nil {
		v.beforeClose()
	}
	if v.region != nil {
		v.region.Detach()
	}
	if v.onClose != nil {
		v.onClose()
	}
	v.Emit("close")
	v.binder.UnbindAll()
	v.Events.RemoveAll()
}

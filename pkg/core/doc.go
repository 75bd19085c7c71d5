// Package core provides the entity model Tide widgets are assembled from.
//
// A widget starts as a bare Entity holding a Base: identity, configuration,
// class naming and touch bookkeeping. Enhancers then extend the entity step
// by step, each attaching one capability: an emitter, a bound element, a
// lifecycle, press feedback. Assemble threads the entity through a pipeline
// of enhancers and fails fast on the first error.
//
// # Capabilities
//
// Capability fields on Entity are nil until their enhancer runs. Enhancers
// only add; an attached capability is never dropped by a later step. Code
// integrating with an optional capability checks for nil and degrades to a
// no-op, so enhancer order stays flexible:
//
//	entity, err := core.Assemble(cfg,
//	    core.WithEvents(),
//	    element.Bind(element.Options{Tag: "div", Interactive: true}),
//	    core.WithLifecycle(),
//	)
//
// # Teardown
//
// Anything an enhancer acquires it must also release. RegisterTeardown
// schedules the release: with a lifecycle capability attached the teardown
// joins the lifecycle's cleanup stack, otherwise the entity stages it and
// runs it on Destroy. Teardowns run in reverse registration order.
//
// # Naming
//
// Generated class names share one grammar: Class prefixes a component name
// ("tide-badge"), ModifierClass marks a state ("tide-badge--open") and
// ElementClass names a child ("tide-badge-text"). Every visual enhancer and
// widget derives its classes through these helpers so documents stay
// consistent under custom prefixes.
package core

// Package dom provides the document model Tide widgets bind to: a tree of
// elements with classes, attributes, inline styles, text content, geometry
// and event listeners, plus HTML serialization for previews.
//
// The model is deliberately small. It is not a browser: there is no layout
// (bounds are assigned by the embedder), no CSS cascade and no rendering.
// It exists so the toolkit's behavior (class toggling, event flow, element
// lifecycles) is observable and testable without a host platform.
//
// Events dispatched on an element bubble through its ancestors and finish at
// the document, mirroring the flow widgets rely on for document-level
// release tracking. A document and all elements created from it share one
// lock, so timer callbacks may safely touch the tree.
package dom

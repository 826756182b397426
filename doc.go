// Package elicit provides:
//
//   - A presentation-agnostic survey model: a tree of Questions addressed by Path
//   - A flat, typed response store (Responses) keyed by structural Path equality
//   - A validation dispatch protocol (field validators, composite validators, ErrorMap)
//   - Default overlays: Suggested values pre-fill a question, Assumed values remove
//     it from collection and seed the store directly (ApplyDefaults)
//   - A Schema[T] capability implemented once per collectable type, and a Builder[T]
//     that overlays suggestions/assumptions and runs any Backend
//
// Design policy:
//
//   - Keep only the core model in the root package; the tree DSL lives under dsl/,
//     the replay backend under scripted/, document projection under inspect/.
//   - Backends own all blocking and retry looping; the core is pure and synchronous.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	b := elicit.NewBuilder[Profile](profileSchema{})
//	profile, err := b.
//		Suggest(elicit.Root("name"), elicit.StringValue("Alice")).
//		Assume(elicit.Root("newsletter"), elicit.BoolValue(true)).
//		Run(backend)
package elicit

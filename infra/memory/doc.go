// Package memory provides the allocation and reclamation
// primitives behind the engine: a slab arena handing out order
// objects from stable storage, a retire ring for objects leaving
// the book, and an epoch clock that decides when a retired object
// can no longer be observed by a snapshot reader.
//
// The package is dependency-free; the engine is the single
// producer, the reclaim job the single consumer.
package memory

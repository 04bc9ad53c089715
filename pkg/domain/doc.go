// Package domain holds the types shared between the solver core and
// every presentation adapter: method identifiers, solve requests, the
// iteration trace, and the uniform result shape. It has no behavior
// beyond validation and wire formatting.
package domain

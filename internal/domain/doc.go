// Package domain defines the calculator's shared types and the contracts
// between the engine and its collaborators. It contains plain types and
// interfaces only.
package domain

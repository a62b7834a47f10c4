// Package provider defines the narrow contract a hosted language-model
// service has to satisfy for a single-shot completion run: list the models a
// credential may invoke, and produce one completion for one prompt.
//
// Key concepts:
//   - Provider: the two-operation interface implemented per backend
//   - ModelDescriptor: a catalog entry with an explicit capability set
//   - Catalog: the models reachable by a credential, in provider order
//   - CompletionResult: generated text plus finish reason and safety metadata
//
// Capability checks are done against enumerated tags rather than substring
// matches on method names, so a backend that reports an operation this
// package does not know about degrades to CapabilityUnknown instead of
// accidentally satisfying a check.
//
// Failure kinds are sentinel errors (ErrMissingCredential and friends) meant
// to be classified with errors.Is; the backend's own error stays in the wrap
// chain verbatim.
package provider

package provider

import "errors"

// Failure kinds for a completion run. Every one of them is fatal: the run
// reports the error and halts, nothing is retried. Callers classify with
// errors.Is; the backend's own error detail stays in the wrap chain.
var (
	// ErrMissingCredential: the credential is absent or empty. Raised before
	// any network activity.
	ErrMissingCredential = errors.New("missing provider credential")

	// ErrProviderUnavailable: the catalog fetch failed, the credential was
	// rejected, or the backend returned an empty catalog.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNoUsableModel: the catalog holds no generation-capable model at all.
	ErrNoUsableModel = errors.New("no generation-capable model available")

	// ErrNoPreferredModel: strict selection found generation-capable models,
	// but none matching the preference list.
	ErrNoPreferredModel = errors.New("no preferred model available")

	// ErrGenerationFailed: the backend rejected or failed the generation call.
	ErrGenerationFailed = errors.New("generation failed")
)

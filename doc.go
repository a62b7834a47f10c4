// Package oneshot runs a single-turn completion against a hosted language
// model: fetch the model catalog for a credential, pick a model from an
// ordered preference list, issue one generation request, and hand the result
// back for rendering.
//
// The pipeline is strictly linear. Each of the four operations (resolve
// credential, list models, select, generate) runs exactly once, in that
// order, and the first failure halts the run. There is no loop-back edge,
// no retry, and no state kept between runs.
//
// Example:
//
//	prov, err := gemini.New(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	client, err := oneshot.New(prov,
//	    oneshot.WithPreferredModels("gemini-2.5-flash", "gemini-2.0-flash"),
//	    oneshot.WithPrompt("Explain what an AI agent is in 2-3 sentences."),
//	)
//	if err != nil {
//	    return err
//	}
//	report, err := client.Run(ctx)
package oneshot

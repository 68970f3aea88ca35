// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lyrics picks song titles and asks a language model for lyric snippets.

# Titles

Titles is a fixed list of 20 songs. PickTitle chooses one uniformly:

	title := lyrics.PickTitle()

# Generation

Client talks to any OpenAI-compatible chat completions endpoint
(OpenRouter by default) through github.com/openai/openai-go:

	gen := lyrics.NewClient(cfg, nil)
	snippet, err := gen.GenerateSnippet(ctx, title)

Each call sends one system message and one user message built by Prompt.
Retries are disabled and no timeout is added beyond ctx. Output is not
deterministic and may occasionally contain the title itself.

Transport errors, responses without choices, and blank content all wrap
ErrUpstreamGeneration.
*/
package lyrics

package service

import (
	"os"

	"botshield/internal/directive"
	"botshield/internal/model"

	"github.com/rs/zerolog/log"
)

// defaultCatalogue is the compiled-in known-bot list used when no
// catalogue file is configured. Ordering matters: most specific names
// first, since the matcher takes the first hit.
var defaultCatalogue = []model.BotPattern{
	{Name: "GPTBot", Description: "OpenAI crawler"},
	{Name: "ChatGPT-User", Description: "OpenAI on-demand fetcher"},
	{Name: "OAI-SearchBot", Description: "OpenAI search crawler"},
	{Name: "ClaudeBot", Description: "Anthropic crawler"},
	{Name: "Claude-Web", Description: "Anthropic on-demand fetcher"},
	{Name: "anthropic-ai", Description: "Anthropic training crawler"},
	{Name: "Google-Extended", Description: "Google AI training opt-out agent"},
	{Name: "Googlebot", Description: "Google search crawler"},
	{Name: "Bingbot", Description: "Microsoft search crawler"},
	{Name: "PerplexityBot", Description: "Perplexity crawler"},
	{Name: "Bytespider", Description: "ByteDance crawler"},
	{Name: "CCBot", Description: "Common Crawl"},
	{Name: "Amazonbot", Description: "Amazon crawler"},
	{Name: "Applebot-Extended", Description: "Apple AI training opt-out agent"},
	{Name: "Applebot", Description: "Apple search crawler"},
	{Name: "FacebookBot", Description: "Meta crawler"},
	{Name: "facebookexternalhit", Description: "Meta link preview"},
	{Name: "Meta-ExternalAgent", Description: "Meta AI crawler"},
	{Name: "cohere-ai", Description: "Cohere crawler"},
	{Name: "Diffbot", Description: "Diffbot scraper"},
	{Name: "omgili", Description: "Webz.io crawler"},
	{Name: "Timpibot", Description: "Timpi crawler"},
	{Name: "YouBot", Description: "You.com crawler"},
	{Name: "DuckDuckBot", Description: "DuckDuckGo crawler"},
	{Name: "YandexBot", Description: "Yandex crawler"},
	{Name: "Baiduspider", Description: "Baidu crawler"},
	{Name: "Twitterbot", Description: "X link preview"},
	{Name: "LinkedInBot", Description: "LinkedIn link preview"},
	{Name: "Slackbot", Description: "Slack link preview"},
	{Name: "Pinterestbot", Description: "Pinterest crawler"},
	{Name: "SemrushBot", Description: "Semrush crawler"},
	{Name: "AhrefsBot", Description: "Ahrefs crawler"},
	{Name: "MJ12bot", Description: "Majestic crawler"},
	{Name: "DotBot", Description: "Moz crawler"},
}

// LoadCatalogue reads the known-bot catalogue from a directive file,
// falling back to the compiled-in list when the path is empty or
// unreadable.
func LoadCatalogue(path string) []model.BotPattern {
	if path == "" {
		return defaultCatalogue
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to read catalogue file, using built-in catalogue")
		return defaultCatalogue
	}

	patterns := directive.Parse(string(data))
	if len(patterns) == 0 {
		log.Warn().Str("path", path).Msg("Catalogue file contains no patterns, using built-in catalogue")
		return defaultCatalogue
	}

	log.Info().Int("patterns", len(patterns)).Str("path", path).Msg("Loaded bot catalogue")
	return patterns
}

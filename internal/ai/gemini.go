// README: Gemini-backed Generator and IntentParser with a Redis prompt
// cache and bounded retries.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"bookbot/internal/nlu"
)

const (
	defaultRetries = 3
	defaultBackoff = 1500 * time.Millisecond
	cacheTTL       = 24 * time.Hour
)

const systemPrompt = `You are an intelligent assistant for a bookstore.
Your job: analyze the user's Vietnamese request and return ONLY a JSON object.
Think step by step internally, but NEVER output the chain-of-thought.

Supported actions:
1) Search:
{"action":"search","filters":{"title":"...","author":"...","category":"..."}}
2) Order:
{"action":"order","book_title":"...","author":"...","quantity":1,"customer_name":"","phone":"","address":""}
3) Chitchat:
{"action":"chitchat","raw":"..."}
4) Unknown:
{"action":"unknown","raw":"..."}

Rules:
- Always return valid JSON only (no extra text).
- If the user requests all books, return {"action":"search","filters":{}}.
- Do not invent facts.
- Only include fields the user provided in the current message. If a field is missing, omit that key.
- Never default quantity to 1 unless the user explicitly said 1.
- In follow-up messages where the user provides contact info (name/phone/address) for an ongoing order, return {"action":"order"} with only the provided fields (do not repeat or change book_title/quantity if the user didn’t restate them).`

// GeminiProvider implements Generator and IntentParser using Google's
// Gemini models.
type GeminiProvider struct {
	client *genai.Client
	text   *genai.GenerativeModel
	intent *genai.GenerativeModel
	cache  *redis.Client

	retries int
	backoff time.Duration

	// invoke is swapped out in tests.
	invoke func(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error)
}

// NewGeminiProvider initializes a new Gemini client. cache is optional;
// when nil, every call goes straight to the model.
func NewGeminiProvider(ctx context.Context, apiKey string, cache *redis.Client) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	// Flash keeps latency low enough for a chat turn.
	text := client.GenerativeModel("gemini-2.0-flash")
	text.SetTemperature(0.4)

	intent := client.GenerativeModel("gemini-2.0-flash")
	intent.ResponseMIMEType = "application/json"
	intent.SetTemperature(0.4)

	return &GeminiProvider{
		client:  client,
		text:    text,
		intent:  intent,
		cache:   cache,
		retries: defaultRetries,
		backoff: defaultBackoff,
		invoke:  callModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate returns the model's text response for prompt. Identical
// prompts are served from the cache.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	key := promptCacheKey(prompt)
	if cached, ok := p.cacheGet(ctx, key); ok {
		return cached, nil
	}

	out, err := p.withRetry(ctx, p.text, prompt)
	if err != nil {
		return "", err
	}
	p.cachePut(ctx, key, out)
	return out, nil
}

// ParseIntent extracts a structured bookstore intent from a Vietnamese
// user message.
func (p *GeminiProvider) ParseIntent(ctx context.Context, userMessage string) (*IntentResult, error) {
	prompt := systemPrompt + "\nUser: " + userMessage

	out, err := p.withRetry(ctx, p.intent, prompt)
	if err != nil {
		return nil, err
	}

	var result IntentResult
	if err := json.Unmarshal([]byte(cleanJSONString(out)), &result); err != nil {
		return nil, fmt.Errorf("parse intent JSON: %w (raw: %s)", err, out)
	}

	postprocessIntent(&result, userMessage)
	return &result, nil
}

// postprocessIntent drops order fields the message did not explicitly
// contain. The model likes to default quantity to 1 and to guess
// titles; both would clobber slots collected on earlier turns.
func postprocessIntent(res *IntentResult, userText string) {
	if res.Action != "order" {
		return
	}
	if nlu.ExtractQuantity(userText) == 0 {
		res.Quantity = 0
	}
	if strings.TrimSpace(res.BookTitle) != "" {
		if nlu.Extract(userText, nil).BookTitle == "" {
			res.BookTitle = ""
		}
	}
}

func (p *GeminiProvider) withRetry(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < p.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(p.backoff):
			}
		}
		out, err := p.invoke(ctx, model, prompt)
		if err == nil && strings.TrimSpace(out) != "" {
			return strings.TrimSpace(out), nil
		}
		if err == nil {
			err = errors.New("empty response")
		}
		lastErr = err
		log.Printf("ai: attempt %d/%d failed: %v", attempt+1, p.retries, err)
	}
	return "", fmt.Errorf("gemini generation failed after %d attempts: %w", p.retries, lastErr)
}

func callModel(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return out.String(), nil
}

func promptCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "llm:cache:" + hex.EncodeToString(sum[:])
}

func (p *GeminiProvider) cacheGet(ctx context.Context, key string) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	val, err := p.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("ai: cache get: %v", err)
		}
		return "", false
	}
	return val, true
}

func (p *GeminiProvider) cachePut(ctx context.Context, key, val string) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, key, val, cacheTTL).Err(); err != nil {
		log.Printf("ai: cache put: %v", err)
	}
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

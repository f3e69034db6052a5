package classifier

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/rueidis"

	"todo-service.com/todo-service/internal/constants"
)

const cacheKeyPrefix = "todo:classify:"

// Cached remembers labels in redis so repeated titles skip inference. Redis
// errors are logged and never change the answer. Fallback answers are not
// stored.
type Cached struct {
	next   Classifier
	client rueidis.Client
	ttl    time.Duration
}

// NewCached returns next unchanged when there is no client or when next is
// an adapter without a model, which must answer general every time.
func NewCached(next Classifier, client rueidis.Client, ttl time.Duration) Classifier {
	if client == nil {
		return next
	}
	if l, ok := next.(interface{ Loaded() bool }); ok && !l.Loaded() {
		return next
	}
	if ttl < time.Second {
		ttl = time.Hour
	}
	return &Cached{next: next, client: client, ttl: ttl}
}

func (c *Cached) Classify(ctx context.Context, text string) constants.Category {
	key, ok := cacheKey(text)
	if !ok {
		return c.next.Classify(ctx, text)
	}

	label, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	switch {
	case err == nil:
		if category, ok := constants.ParseCategory(label); ok {
			return category
		}
	case !rueidis.IsRedisNil(err):
		log.Printf("classification cache read failed: %v", err)
	}

	category, ok := c.classifyNext(ctx, text)
	if !ok {
		return category
	}

	cmd := c.client.B().Set().Key(key).Value(string(category)).ExSeconds(int64(c.ttl / time.Second)).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("classification cache write failed: %v", err)
	}
	return category
}

func (c *Cached) classifyNext(ctx context.Context, text string) (constants.Category, bool) {
	if l, ok := c.next.(Labeler); ok {
		return l.Label(ctx, text)
	}
	return c.next.Classify(ctx, text), true
}

func cacheKey(text string) (string, bool) {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return "", false
	}
	return cacheKeyPrefix + normalized, true
}

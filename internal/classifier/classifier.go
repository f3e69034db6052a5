package classifier

import (
	"context"
	"log"
	"strings"

	"todo-service.com/todo-service/internal/constants"
)

// Classifier derives a category from free text. Implementations never fail;
// anything that goes wrong resolves to the general category.
type Classifier interface {
	Classify(ctx context.Context, text string) constants.Category
}

// Labeler is implemented by classifiers that can tell a real prediction
// from the general fallback. ok is false whenever the fallback was used.
type Labeler interface {
	Label(ctx context.Context, text string) (category constants.Category, ok bool)
}

// Predictor is a loaded model that maps text to a class index.
type Predictor interface {
	Predict(text string) (int, error)
}

// Fallback is the classifier used when no model is wanted at all.
type Fallback struct{}

func (Fallback) Classify(context.Context, string) constants.Category {
	return constants.CategoryGeneral
}

type Adapter struct {
	model Predictor
}

// NewAdapter wraps model. A nil model gives an adapter that is not loaded and
// answers general without attempting inference.
func NewAdapter(model Predictor) *Adapter {
	return &Adapter{model: model}
}

func (a *Adapter) Loaded() bool {
	return a != nil && a.model != nil
}

func (a *Adapter) Classify(ctx context.Context, text string) constants.Category {
	category, _ := a.Label(ctx, text)
	return category
}

func (a *Adapter) Label(_ context.Context, text string) (category constants.Category, ok bool) {
	if !a.Loaded() {
		return constants.CategoryGeneral, false
	}
	if strings.TrimSpace(text) == "" {
		return constants.CategoryGeneral, false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("classifier panicked on %q: %v", text, r)
			category, ok = constants.CategoryGeneral, false
		}
	}()

	index, err := a.model.Predict(text)
	if err != nil {
		log.Printf("classifier failed on %q, using %s: %v", text, constants.CategoryGeneral, err)
		return constants.CategoryGeneral, false
	}
	return LabelForIndex(index), true
}

func LabelForIndex(index int) constants.Category {
	switch index {
	case 0:
		return constants.CategoryPrivate
	case 1:
		return constants.CategoryWork
	default:
		return constants.CategoryGeneral
	}
}

// Load reads the keyword model at path once. When the file cannot be read or
// parsed the adapter stays unloaded.
func Load(path string) *Adapter {
	model, err := LoadKeywordModel(path)
	if err != nil {
		log.Printf("could not load classifier model %s: %v", path, err)
		return NewAdapter(nil)
	}
	log.Printf("classifier model loaded from %s (%d keywords)", path, len(model.keywords))
	return NewAdapter(model)
}

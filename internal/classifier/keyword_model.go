package classifier

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"todo-service.com/todo-service/internal/constants"
)

var ErrEmptyText = errors.New("nothing to classify")

type modelFile struct {
	Classes  []string            `yaml:"classes"`
	Keywords map[string][]string `yaml:"keywords"`
}

// KeywordModel scores text by counting keyword hits per class. The class
// index is its position in the model file's class list.
type KeywordModel struct {
	classes      []string
	keywords     map[string][]int
	defaultIndex int
}

func LoadKeywordModel(path string) (*KeywordModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKeywordModel(data)
}

func ParseKeywordModel(data []byte) (*KeywordModel, error) {
	var file modelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(file.Classes) == 0 {
		return nil, errors.New("model has no classes")
	}
	if err := checkClassOrder(file.Classes); err != nil {
		return nil, err
	}

	m := &KeywordModel{
		classes:      file.Classes,
		keywords:     make(map[string][]int),
		defaultIndex: -1,
	}

	index := make(map[string]int, len(file.Classes))
	for i, class := range file.Classes {
		class = strings.ToLower(strings.TrimSpace(class))
		index[class] = i
		if class == "general" {
			m.defaultIndex = i
		}
	}

	for class, words := range file.Keywords {
		i, ok := index[strings.ToLower(strings.TrimSpace(class))]
		if !ok {
			return nil, fmt.Errorf("keywords for unknown class %q", class)
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			m.keywords[w] = append(m.keywords[w], i)
		}
	}
	return m, nil
}

// checkClassOrder pins the positions LabelForIndex relies on.
func checkClassOrder(classes []string) error {
	want := []constants.Category{constants.CategoryPrivate, constants.CategoryWork}
	if len(classes) < len(want) {
		return fmt.Errorf("model needs at least the classes %v, got %v", want, classes)
	}
	for i, category := range want {
		if !strings.EqualFold(strings.TrimSpace(classes[i]), string(category)) {
			return fmt.Errorf("class %d must be %q, got %q", i, category, classes[i])
		}
	}
	return nil
}

// Predict returns the class with the most keyword hits. No hits or a tie
// yields the general class.
func (m *KeywordModel) Predict(text string) (int, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0, ErrEmptyText
	}

	scores := make([]int, len(m.classes))
	for _, tok := range tokens {
		for _, i := range m.keywords[tok] {
			scores[i]++
		}
	}

	best, bestScore, tie := m.defaultIndex, 0, false
	for i, s := range scores {
		switch {
		case s > bestScore:
			best, bestScore, tie = i, s, false
		case s == bestScore && s > 0:
			tie = true
		}
	}
	if tie {
		return m.defaultIndex, nil
	}
	return best, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

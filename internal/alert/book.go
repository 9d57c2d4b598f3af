package alert

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"MarketCalendar/internal/model"
)

var (
	ErrInvalidAlert  = errors.New("invalid alert")
	ErrAlertNotFound = errors.New("alert not found")
)

// DefaultRules are the rules a new book starts with.
func DefaultRules() []model.Alert {
	return []model.Alert{
		{ID: "1", Type: model.AlertVolatility, Condition: model.ConditionAbove, Threshold: 8, IsActive: true, Message: "High volatility alert (>8%)"},
		{ID: "2", Type: model.AlertPerformance, Condition: model.ConditionBelow, Threshold: -5, IsActive: true, Message: "Significant loss alert (<-5%)"},
		{ID: "3", Type: model.AlertVolume, Condition: model.ConditionAbove, Threshold: 200_000_000, IsActive: true, Message: "High volume alert (>200M)"},
	}
}

// Patch carries optional rule updates; nil fields are left untouched.
type Patch struct {
	Type      *model.AlertType `json:"type"`
	Condition *model.Condition `json:"condition"`
	Threshold *float64         `json:"threshold"`
	IsActive  *bool            `json:"isActive"`
	Message   *string          `json:"message"`
}

// Book holds the alert rules with concurrency safety.
type Book struct {
	mu    sync.Mutex
	rules []model.Alert
}

// NewBook creates a book holding a copy of rules.
func NewBook(rules []model.Alert) *Book {
	b := &Book{}
	for _, r := range rules {
		r.TriggeredDates = nil
		b.rules = append(b.rules, r)
	}
	return b
}

// Validate applies the creation guard: a message and a non-zero threshold
// on a known metric and direction.
func Validate(a model.Alert) error {
	if strings.TrimSpace(a.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidAlert)
	}
	if a.Threshold == 0 {
		return fmt.Errorf("%w: threshold must be non-zero", ErrInvalidAlert)
	}
	if _, err := model.ParseAlertType(string(a.Type)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAlert, err)
	}
	if _, err := model.ParseCondition(string(a.Condition)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAlert, err)
	}
	return nil
}

// Add validates a and stores it under a fresh ID.
func (b *Book) Add(a model.Alert) (model.Alert, error) {
	if err := Validate(a); err != nil {
		return model.Alert{}, err
	}
	a.ID = uuid.NewString()
	a.TriggeredDates = nil

	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append(b.rules, a)
	return a, nil
}

// Update applies p to the rule with the given ID.
func (b *Book) Update(id string, p Patch) (model.Alert, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, r := range b.rules {
		if r.ID != id {
			continue
		}
		if p.Type != nil {
			r.Type = *p.Type
		}
		if p.Condition != nil {
			r.Condition = *p.Condition
		}
		if p.Threshold != nil {
			r.Threshold = *p.Threshold
		}
		if p.IsActive != nil {
			r.IsActive = *p.IsActive
		}
		if p.Message != nil {
			r.Message = *p.Message
		}
		if err := Validate(r); err != nil {
			return model.Alert{}, err
		}
		b.rules[i] = r
		return r, nil
	}
	return model.Alert{}, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
}

// Delete removes the rule with the given ID.
func (b *Book) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, r := range b.rules {
		if r.ID == id {
			b.rules = append(b.rules[:i], b.rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
}

// List returns a copy of the rules in insertion order.
func (b *Book) List() []model.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Alert(nil), b.rules...)
}

// Triggered evaluates the current rules against data.
func (b *Book) Triggered(data []model.FinancialData) []model.Alert {
	return Evaluate(b.List(), data)
}

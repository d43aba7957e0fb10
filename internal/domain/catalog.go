package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ResponseRule maps a set of trigger keywords to a canned reply.
type ResponseRule struct {
	Keywords []string
	Response string
}

func (r ResponseRule) matches(normalized string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}

	return false
}

// Catalog is an ordered rule list. Declaration order is priority order.
type Catalog struct {
	rules    []ResponseRule
	fallback string
}

var errEmptyFallback = errors.New("catalog fallback response is empty")

func NewCatalog(fallback string, rules ...ResponseRule) (Catalog, error) {
	if strings.TrimSpace(fallback) == "" {
		return Catalog{}, errEmptyFallback
	}

	copied := make([]ResponseRule, 0, len(rules))
	for i, rule := range rules {
		if err := validateRule(rule); err != nil {
			return Catalog{}, fmt.Errorf("rule %d: %w", i, err)
		}
		copied = append(copied, ResponseRule{
			Keywords: append([]string(nil), rule.Keywords...),
			Response: rule.Response,
		})
	}

	return Catalog{rules: copied, fallback: fallback}, nil
}

func validateRule(rule ResponseRule) error {
	if len(rule.Keywords) == 0 {
		return errors.New("keyword set is empty")
	}
	if strings.TrimSpace(rule.Response) == "" {
		return errors.New("response is empty")
	}
	for _, keyword := range rule.Keywords {
		if keyword == "" {
			return errors.New("keyword is empty")
		}
		if strings.ToLower(keyword) != keyword {
			return fmt.Errorf("keyword %q is not lowercase", keyword)
		}
	}

	return nil
}

// Match returns the reply for text. It never fails.
func (c Catalog) Match(text string) string {
	if rule, ok := c.MatchRule(text); ok {
		return rule.Response
	}

	return c.fallback
}

// MatchRule returns the first rule with a keyword contained in text.
func (c Catalog) MatchRule(text string) (ResponseRule, bool) {
	normalized := strings.ToLower(text)
	for _, rule := range c.rules {
		if rule.matches(normalized) {
			return rule, true
		}
	}

	return ResponseRule{}, false
}

func (c Catalog) Rules() []ResponseRule {
	rules := make([]ResponseRule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

func (c Catalog) Fallback() string {
	return c.fallback
}

const DefaultFallbackResponse = "I understand you're looking for medical guidance. While I can provide general health information, I recommend booking an appointment with one of our doctors for personalized medical advice. Is there a specific symptom I can help you understand better?"

// DefaultCatalog is the built-in medical assistant catalog.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog(DefaultFallbackResponse, defaultRules...)
	if err != nil {
		panic(err)
	}

	return catalog
}

var defaultRules = []ResponseRule{
	{
		Keywords: []string{"fever", "temperature", "hot", "chills"},
		Response: "For fever, rest and stay hydrated. Take acetaminophen or ibuprofen as directed. If fever exceeds 102°F (38.9°C) or persists for more than 3 days, please consult a doctor immediately.",
	},
	{
		Keywords: []string{"cough", "coughing", "throat"},
		Response: "For persistent cough, try warm liquids and honey. Avoid irritants like smoke. If cough produces blood, worsens, or lasts more than 2 weeks, please schedule an appointment with a doctor.",
	},
	{
		Keywords: []string{"headache", "head pain", "migraine"},
		Response: "For headaches, ensure adequate hydration and rest in a quiet, dark room. Gentle neck stretches may help. If headaches are severe, frequent, or accompanied by vision changes, please seek medical attention.",
	},
	{
		Keywords: []string{"stomach", "nausea", "vomiting", "digestive"},
		Response: "For stomach issues, try the BRAT diet (bananas, rice, applesauce, toast) and stay hydrated with clear fluids. If symptoms persist for more than 24 hours or you have severe pain, consult a healthcare provider.",
	},
	{
		Keywords: []string{"pain", "ache", "hurt", "sore"},
		Response: "For general pain, rest the affected area and apply ice for acute injuries or heat for muscle tension. Over-the-counter pain relievers can help. If pain is severe or doesn't improve, please book an appointment.",
	},
	{
		Keywords: []string{"cold", "flu", "runny nose", "congestion"},
		Response: "For cold symptoms, get plenty of rest, drink fluids, and use a humidifier. Saline nasal rinses can help with congestion. If symptoms worsen or last more than 10 days, consider seeing a doctor.",
	},
	{
		Keywords: []string{"allergies", "allergy", "sneezing", "itchy"},
		Response: "For allergies, identify and avoid triggers when possible. Antihistamines can provide relief. If you experience difficulty breathing or severe reactions, seek immediate medical care.",
	},
	{
		Keywords: []string{"appointment", "book", "schedule", "doctor"},
		Response: "I can help you understand symptoms, but for proper diagnosis and treatment, please book an appointment with one of our qualified doctors using the appointment booking feature.",
	},
	{
		Keywords: []string{"emergency", "urgent", "serious", "severe"},
		Response: "If this is a medical emergency, please call 911 immediately or go to your nearest emergency room. For urgent but non-emergency care, consider visiting an urgent care center.",
	},
}

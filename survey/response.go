package survey

import (
	"fmt"
	"strings"

	"github.com/edustat/postlasso/errs"
)

// Response identifies one of the survey's response variables.
type Response int

const (
	// PrintKnowledge is the print knowledge composite score.
	PrintKnowledge Response = iota
	// LiteracyResources is the home literacy resources composite score.
	LiteracyResources
	// OralLanguage is the oral language composite score.
	OralLanguage
	// PrintMotivation is the print motivation composite score.
	PrintMotivation
)

// AllSelector expands to every response when passed to Resolve.
const AllSelector = "all"

// responseNames maps Response to the snake_case keys used for data
// columns and results file names.
var responseNames = map[Response]string{
	PrintKnowledge:    "print_knowledge",
	LiteracyResources: "literacy_resources",
	OralLanguage:      "oral_language",
	PrintMotivation:   "print_motivation",
}

// String returns the response key.
func (r Response) String() string {
	if name, exists := responseNames[r]; exists {
		return name
	}

	return "unknown"
}

// All returns every survey response in declaration order.
func All() []Response {
	return []Response{PrintKnowledge, LiteracyResources, OralLanguage, PrintMotivation}
}

// IsResponseColumn reports whether a data column carries one of the
// response variables rather than a predictor.
func IsResponseColumn(name string) bool {
	for _, key := range responseNames {
		if name == key {
			return true
		}
	}

	return false
}

// Resolve maps a selector to concrete responses. The AllSelector expands
// to every response; any other value is matched by keyword against the
// response names, case-insensitively: "oral" picks oral_language,
// "literacy" picks literacy_resources, and "print" combined with
// "knowledge" or "motivation" picks the respective print response.
//
// Returns ErrUnknownResponse when the selector matches no response or
// more than one.
func Resolve(selector string) ([]Response, error) {
	s := strings.ToLower(strings.TrimSpace(selector))
	if s == AllSelector {
		return All(), nil
	}

	var matched []Response
	if strings.Contains(s, "oral") {
		matched = append(matched, OralLanguage)
	}
	if strings.Contains(s, "literacy") {
		matched = append(matched, LiteracyResources)
	}
	if strings.Contains(s, "print") && strings.Contains(s, "knowledge") {
		matched = append(matched, PrintKnowledge)
	}
	if strings.Contains(s, "print") && strings.Contains(s, "motivation") {
		matched = append(matched, PrintMotivation)
	}

	switch len(matched) {
	case 0:
		return nil, fmt.Errorf("%w: %q matches no response variable", errs.ErrUnknownResponse, selector)
	case 1:
		return matched, nil
	default:
		return nil, fmt.Errorf("%w: %q is ambiguous", errs.ErrUnknownResponse, selector)
	}
}

// Package rules defines the fixed detection-rule checklist and builds the
// combined evaluation prompt sent to the generation service.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rules.json
var defaultRulesJSON []byte

//go:embed rules.schema.json
var rulesSchemaJSON []byte

// weightSumTolerance is the floating tolerance for the weights-sum-to-one check.
const weightSumTolerance = 1e-6

// Rule is one checklist heuristic with a fixed weight and a prompt fragment.
// The rule set is loaded once at process start and is read-only afterwards.
type Rule struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PromptTemplate string  `json:"prompt_template"`
	Weight         float64 `json:"weight"`
}

// Default returns the built-in rule set.
func Default() []Rule {
	ruleSet, err := parse(defaultRulesJSON)
	if err != nil {
		// The embedded rule set is validated by tests; a parse failure here is a build defect.
		panic(fmt.Sprintf("embedded rule set invalid: %v", err))
	}
	return ruleSet
}

// LoadFile loads a custom rule set from a JSON file, validating it against the
// rules schema and the weight-sum invariant.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) ([]Rule, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var ruleSet []Rule
	if err := json.Unmarshal(data, &ruleSet); err != nil {
		return nil, fmt.Errorf("failed to parse rules JSON: %w", err)
	}

	if err := validateWeights(ruleSet); err != nil {
		return nil, err
	}

	return ruleSet, nil
}

func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(rulesSchemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate rules against schema: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("rules schema violation at %s: %s", first.Field(), first.Description())
	}
	return nil
}

func validateWeights(ruleSet []Rule) error {
	if len(ruleSet) == 0 {
		return fmt.Errorf("rule set is empty")
	}

	seen := make(map[string]bool, len(ruleSet))
	sum := 0.0
	for _, rule := range ruleSet {
		if seen[rule.ID] {
			return fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		seen[rule.ID] = true
		sum += rule.Weight
	}

	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("rule weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// IDs returns the rule ids in definition order. The order matters: rule N in
// the model's reply corresponds to the Nth rule here.
func IDs(ruleSet []Rule) []string {
	ids := make([]string, len(ruleSet))
	for i, rule := range ruleSet {
		ids[i] = rule.ID
	}
	return ids
}

// Weights returns the original weight table for the rule set.
func Weights(ruleSet []Rule) map[string]float64 {
	weights := make(map[string]float64, len(ruleSet))
	for _, rule := range ruleSet {
		weights[rule.ID] = rule.Weight
	}
	return weights
}

// ByID returns the rule with the given id, or nil when absent.
func ByID(ruleSet []Rule, id string) *Rule {
	for i := range ruleSet {
		if ruleSet[i].ID == id {
			return &ruleSet[i]
		}
	}
	return nil
}

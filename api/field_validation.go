package api

import (
	"fmt"
	"sort"
	"strings"
)

// ProcedureInputs lists the input fields of each procedure. A field marked
// required must be present; among alternatives separated by "|" one must be.
// Unknown fields are ignored.
var ProcedureInputs = map[string][]InputField{
	"listTransactions": {
		{Name: "page"}, {Name: "limit"}, {Name: "chainId"}, {Name: "contractType"},
		{Name: "contractAddress"}, {Name: "blockNumber"}, {Name: "integraHash"},
		{Name: "documentHash"}, {Name: "processHash"}, {Name: "method"},
	},
	"getTransaction":       {{Name: "hash", Required: true}},
	"getBlockTransactions": {{Name: "blockNumber", Required: true}, {Name: "chainId"}},
	"search":               {{Name: "q|query", Required: true}},
	"getStats":             {{Name: "chainId"}},
}

type InputField struct {
	Name     string
	Required bool
}

// ValidateInputFields checks that every required input of the procedure is present.
func ValidateInputFields(procedure string, present map[string]bool) error {
	fields, exists := ProcedureInputs[procedure]
	if !exists {
		return fmt.Errorf("unknown procedure: %s", procedure)
	}

	var missing []string
	for _, field := range fields {
		if !field.Required {
			continue
		}
		found := false
		for _, alternative := range strings.Split(field.Name, "|") {
			if present[alternative] {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, strings.ReplaceAll(field.Name, "|", " or "))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required input for %s: %s", procedure, strings.Join(missing, ", "))
	}
	return nil
}

// Package render turns a quadratic.Result into the user-facing line.
package render

import (
	"fmt"
	"strings"
)

// Catalog holds the prompt and outcome texts of one language.
// Outcome templates use %[n]s verbs so a translation may reorder operands.
type Catalog struct {
	Lang         string
	Prompt       string // %s = field name
	NotQuadratic string
	TwoReal      string // x1, x2
	OneReal      string // x
	Complex      string // re, im
}

// French reproduces the historical wording; it is the default.
var French = Catalog{
	Lang:         "fr",
	Prompt:       "Entrez la valeur de %s : ",
	NotQuadratic: "Ce n'est pas une equation du second degre.",
	TwoReal:      "Deux solutions reelles : x1 = %[1]s et x2 = %[2]s",
	OneReal:      "Une seule solution reelle : x = %[1]s",
	Complex:      "Deux solutions complexes : x1 = %[1]s - %[2]si et x2 = %[1]s + %[2]si",
}

// English is an alternative catalogue.
var English = Catalog{
	Lang:         "en",
	Prompt:       "Enter the value of %s: ",
	NotQuadratic: "This is not a quadratic equation.",
	TwoReal:      "Two real solutions: x1 = %[1]s and x2 = %[2]s",
	OneReal:      "One real solution: x = %[1]s",
	Complex:      "Two complex solutions: x1 = %[1]s - %[2]si and x2 = %[1]s + %[2]si",
}

var catalogs = map[string]Catalog{
	French.Lang:  French,
	English.Lang: English,
}

// Lookup returns the catalogue registered for lang.
func Lookup(lang string) (Catalog, error) {
	c, ok := catalogs[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return Catalog{}, fmt.Errorf("unknown language %q (expected fr|en)", lang)
	}
	return c, nil
}

// PromptFor returns the prompt shown before reading field.
func (c Catalog) PromptFor(field string) string {
	return fmt.Sprintf(c.Prompt, field)
}

package rank

import "strings"

// genericTemplates are the default suggestion templates when no specific
// intent is detected.
var genericTemplates = []string{
	"Top-rated {base} near you",
	"Affordable {base} in {city}",
	"Trusted {base} nearby",
	"Best {base} in {city}",
	"Experienced {base} near me",
}

// intentTemplates maps each intent to its ordered template list.
var intentTemplates = map[string][]string{
	IntentBook: {
		"Book {base} in {city}",
		"Schedule with {base} near you",
		"Reserve {base} today",
	},
	IntentHire: {
		"Top-rated {base} near you",
		"Best {base} in {city}",
		"Trusted {base} nearby",
	},
	IntentReview: {
		"Highest-rated {base} in {city}",
		"{base} with great reviews",
		"Most trusted {base} near you",
	},
	IntentCompare: {
		"Compare {base} in {city}",
		"Top {base} options near you",
		"Best {base} nearby",
	},
	IntentGeneric: genericTemplates,
}

// cityPlaceholder stands in for {city} when no city could be resolved.
const cityPlaceholder = "[City]"

// renderTemplates instantiates the intent's templates with a base text and
// resolved city, in template order.
func renderTemplates(base, city, intent string) []string {
	templates, ok := intentTemplates[intent]
	if !ok {
		templates = genericTemplates
	}
	if city == "" {
		city = cityPlaceholder
	}

	rendered := make([]string, 0, len(templates))
	for _, tpl := range templates {
		s := strings.ReplaceAll(tpl, "{base}", base)
		s = strings.ReplaceAll(s, "{city}", city)
		rendered = append(rendered, s)
	}
	return rendered
}

package usecases

import "strings"

// Curated lexicon for French real-estate, tenancy, property-tax and SCI
// topics. Terms are stored folded (lowercase, no accents); multi-word
// phrases are matched on the normalized word sequence.
var domainTerms = []string{
	"immobilier",
	"immobiliere",
	"sci",
	"bail",
	"baux",
	"loyer",
	"loyers",
	"locataire",
	"location",
	"proprietaire",
	"copropriete",
	"syndic",
	"notaire",
	"fiscalite",
	"taxe fonciere",
	"taxe d habitation",
	"plus value",
	"logement",
	"appartement",
	"maison",
	"terrain",
	"hypotheque",
	"credit immobilier",
	"pret immobilier",
	"compromis de vente",
	"promesse de vente",
	"acte de vente",
	"acte authentique",
	"usufruit",
	"nue propriete",
	"viager",
	"caution",
	"depot de garantie",
	"etat des lieux",
	"preavis",
	"expulsion",
	"loi alur",
	"lmnp",
	"meuble",
	"dpe",
	"droit de preemption",
	"servitude",
	"cadastre",
	"indivision",
	"succession",
	"donation",
}

// IsInDomain reports whether text concerns French real estate, leases,
// property taxation or SCI holding companies. Pure keyword matching
// over folded text, so identical inputs always classify identically.
// Single-word terms must match a whole word (keeps "sci" from firing on
// "piscine"); phrases match the normalized word sequence.
func IsInDomain(text string) bool {
	words := foldedWords(text)
	if len(words) == 0 {
		return false
	}

	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}
	normalized := " " + strings.Join(words, " ") + " "

	for _, term := range domainTerms {
		if strings.Contains(term, " ") {
			if strings.Contains(normalized, " "+term+" ") {
				return true
			}
			continue
		}
		if _, ok := wordSet[term]; ok {
			return true
		}
	}
	return false
}

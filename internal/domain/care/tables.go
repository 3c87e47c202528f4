package care

import "strings"

type riskEntry struct {
	token  string
	points int
}

// breedPatterns son listas de tokens por categoría. Se comparan por substring
// case-insensitive y gana el primero que matchea, por eso son slices ordenados.
type breedPatterns struct {
	highEnergy []string
	lowEnergy  []string
	companion  []string
	coat       []string
	risk       []riskEntry
}

var breedTables = map[Category]breedPatterns{
	CategoryDogs: {
		highEnergy: []string{
			"border collie", "husky", "malinois", "pastor belga", "australian shepherd",
			"pastor australiano", "jack russell", "dalmatian", "dálmata", "weimaraner",
			"vizsla", "labrador", "retriever", "beagle", "boxer",
		},
		lowEnergy: []string{
			"bulldog", "basset", "shih tzu", "pug", "carlino", "mastiff", "mastín",
			"saint bernard", "san bernardo", "great dane", "gran danés", "chow chow",
			"pekingese", "pekinés",
		},
		companion: []string{
			"golden", "labrador", "cavalier", "poodle", "caniche", "bichon", "maltese", "maltés",
		},
		coat: []string{
			"poodle", "caniche", "shih tzu", "yorkshire", "afghan", "afgano", "collie",
			"bichon", "maltese", "maltés", "husky", "pomeranian", "pomerania", "chow",
			"samoyed", "samoyedo", "old english",
		},
		risk: []riskEntry{
			{"bulldog", 25},
			{"pug", 25},
			{"carlino", 25},
			{"german shepherd", 20},
			{"pastor alemán", 20},
			{"pastor aleman", 20},
			{"great dane", 20},
			{"gran danés", 20},
			{"cavalier", 20},
			{"dachshund", 15},
			{"salchicha", 15},
			{"boxer", 15},
			{"rottweiler", 15},
			{"golden retriever", 10},
			{"labrador", 10},
		},
	},
	CategoryCats: {
		highEnergy: []string{
			"bengal", "bengalí", "abyssinian", "abisinio", "siamese", "siamés", "siames",
			"savannah", "oriental", "devon rex", "cornish rex",
		},
		lowEnergy: []string{
			"persian", "persa", "ragdoll", "british shorthair", "exotic", "exótico",
			"himalayan", "himalayo",
		},
		companion: []string{
			"siamese", "siamés", "siames", "ragdoll", "sphynx", "esfinge", "maine coon",
		},
		coat: []string{
			"persian", "persa", "maine coon", "himalayan", "himalayo", "ragdoll",
			"norwegian forest", "bosque de noruega",
		},
		risk: []riskEntry{
			{"scottish fold", 25},
			{"persian", 20},
			{"persa", 20},
			{"maine coon", 15},
			{"sphynx", 15},
			{"esfinge", 15},
			{"ragdoll", 10},
			{"british shorthair", 10},
		},
	},
	CategoryBirds: {
		highEnergy: []string{
			"parrot", "loro", "cockatoo", "cacatúa", "cacatua", "budgie", "periquito",
			"parakeet", "lovebird", "agapornis", "conure", "cotorra",
		},
		lowEnergy: []string{
			"canary", "canario", "dove", "paloma", "finch", "pinzón", "pinzon",
		},
		companion: []string{
			"cockatoo", "cacatúa", "cacatua", "african grey", "yaco", "parrot", "loro",
			"cockatiel", "ninfa",
		},
		risk: []riskEntry{
			{"cockatoo", 10},
			{"cacatúa", 10},
			{"african grey", 10},
			{"yaco", 10},
			{"budgie", 10},
			{"periquito", 10},
		},
	},
}

// Restricciones alimentarias (alimentos tóxicos) por categoría.
var toxicFoods = map[Category][]string{
	CategoryDogs: {
		"chocolate", "uvas y pasas", "cebolla", "ajo", "xilitol", "nueces de macadamia", "alcohol",
	},
	CategoryCats: {
		"cebolla", "ajo", "chocolate", "uvas y pasas", "leche de vaca", "masa cruda", "alcohol",
	},
	CategoryBirds: {
		"aguacate", "chocolate", "cafeína", "sal", "alcohol", "semillas de manzana",
	},
}

var healthSupplements = []string{"omega-3", "glucosamina", "probióticos"}

func normalizeBreed(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func matchAny(breed string, tokens []string) bool {
	if breed == "" {
		return false
	}
	for _, t := range tokens {
		if strings.Contains(breed, t) {
			return true
		}
	}
	return false
}

func matchRisk(breed string, entries []riskEntry) int {
	if breed == "" {
		return 0
	}
	for _, e := range entries {
		if strings.Contains(breed, e.token) {
			return e.points
		}
	}
	return 0
}

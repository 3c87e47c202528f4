package breeds

import (
	"slices"
	"sort"
	"strings"
)

// Lookup devuelve la metadata de una raza. Nunca falla:
// exacto -> alias -> contención de tokens -> "Mixed" de la categoría.
// Una categoría desconocida cae en el "Mixed" de "other".
// Los slices devueltos son copias; la tabla no se comparte con el llamador.
func Lookup(animalType, breed string) Info {
	return lookup(animalType, breed).clone()
}

func lookup(animalType, breed string) Info {
	cat := strings.ToLower(strings.TrimSpace(animalType))
	entries, ok := table[cat]
	if !ok {
		return table["other"][mixed]
	}

	key := normalize(breed)
	if key == "" {
		return entries[mixed]
	}
	if info, ok := entries[key]; ok {
		return info
	}
	if canon, ok := aliases[cat][key]; ok {
		return entries[canon]
	}

	if canon, ok := containedKey(entries, key); ok {
		return entries[canon]
	}
	if canon, ok := containedAlias(aliases[cat], key); ok {
		return entries[canon]
	}
	return entries[mixed]
}

// Known lista las razas canónicas (sin "Mixed") de una categoría,
// ordenadas de la más específica (más larga) a la más corta.
func Known(animalType string) []string {
	entries := table[strings.ToLower(strings.TrimSpace(animalType))]
	out := make([]string, 0, len(entries))
	for k := range entries {
		if k != mixed {
			out = append(out, k)
		}
	}
	sortBySpecificity(out)
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// containedKey busca una key cuyo texto contenga, o esté contenido en, el nombre
// recibido ("labrador retriever puppy" -> "labrador retriever").
func containedKey(entries map[string]Info, key string) (string, bool) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		if k != mixed {
			keys = append(keys, k)
		}
	}
	sortBySpecificity(keys)
	for _, k := range keys {
		if containsTokens(key, k) || containsTokens(k, key) {
			return k, true
		}
	}
	return "", false
}

func containedAlias(al map[string]string, key string) (string, bool) {
	names := make([]string, 0, len(al))
	for a := range al {
		names = append(names, a)
	}
	sortBySpecificity(names)
	for _, a := range names {
		if containsTokens(key, a) {
			return al[a], true
		}
	}
	return "", false
}

// containsTokens es true si todos los tokens de needle aparecen, contiguos, en haystack.
func containsTokens(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

func sortBySpecificity(s []string) {
	sort.Slice(s, func(i, j int) bool {
		if len(s[i]) != len(s[j]) {
			return len(s[i]) > len(s[j])
		}
		return s[i] < s[j]
	})
}

func (i Info) clone() Info {
	i.Temperament = slices.Clone(i.Temperament)
	i.Characteristics = slices.Clone(i.Characteristics)
	i.Colors = slices.Clone(i.Colors)
	i.Recommendations = slices.Clone(i.Recommendations)
	return i
}

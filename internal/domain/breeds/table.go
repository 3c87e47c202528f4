package breeds

// Info es la metadata estática que se adjunta a una detección ganadora.
type Info struct {
	Name            string   `json:"name"`
	Temperament     []string `json:"temperament"`
	Characteristics []string `json:"characteristics"`
	CareLevel       string   `json:"careLevel"`
	Colors          []string `json:"colors"`
	Recommendations []string `json:"recommendations"`
	LifeExpectancy  string   `json:"lifeExpectancy"`
	Weight          string   `json:"weight"`
	Origin          string   `json:"origin"`
}

const mixed = "mixed"

// table es de solo lectura: categoría -> raza normalizada -> Info.
// Cada categoría tiene una entrada "mixed" como fallback genérico.
var table = map[string]map[string]Info{
	"dog": {
		"labrador retriever": {
			Name:            "Labrador Retriever",
			Temperament:     []string{"Amigable", "Activo", "Leal"},
			Characteristics: []string{"Excelente con niños", "Fácil de entrenar", "Le encanta nadar"},
			CareLevel:       "Medio",
			Colors:          []string{"Negro", "Chocolate", "Amarillo"},
			Recommendations: []string{"Ejercicio diario", "Control de peso", "Revisión de caderas"},
			LifeExpectancy:  "10-12 años",
			Weight:          "25-36 kg",
			Origin:          "Canadá",
		},
		"german shepherd": {
			Name:            "Pastor Alemán",
			Temperament:     []string{"Inteligente", "Protector", "Obediente"},
			Characteristics: []string{"Perro de trabajo", "Muy entrenable", "Territorial"},
			CareLevel:       "Alto",
			Colors:          []string{"Negro y fuego", "Negro", "Sable"},
			Recommendations: []string{"Estimulación mental", "Socialización temprana", "Control de displasia"},
			LifeExpectancy:  "9-13 años",
			Weight:          "22-40 kg",
			Origin:          "Alemania",
		},
		"golden retriever": {
			Name:            "Golden Retriever",
			Temperament:     []string{"Cariñoso", "Paciente", "Juguetón"},
			Characteristics: []string{"Ideal para familias", "Pelaje denso", "Muy sociable"},
			CareLevel:       "Medio",
			Colors:          []string{"Dorado", "Crema"},
			Recommendations: []string{"Cepillado frecuente", "Ejercicio diario", "Chequeos oncológicos"},
			LifeExpectancy:  "10-12 años",
			Weight:          "25-34 kg",
			Origin:          "Escocia",
		},
		"bulldog": {
			Name:            "Bulldog",
			Temperament:     []string{"Tranquilo", "Cariñoso", "Terco"},
			Characteristics: []string{"Braquicéfalo", "Poca resistencia", "Sensible al calor"},
			CareLevel:       "Alto",
			Colors:          []string{"Atigrado", "Blanco", "Leonado"},
			Recommendations: []string{"Evitar calor extremo", "Limpieza de pliegues", "Control respiratorio"},
			LifeExpectancy:  "8-10 años",
			Weight:          "18-25 kg",
			Origin:          "Inglaterra",
		},
		"poodle": {
			Name:            "Caniche",
			Temperament:     []string{"Inteligente", "Alegre", "Elegante"},
			Characteristics: []string{"Pelo hipoalergénico", "Muy entrenable", "Varios tamaños"},
			CareLevel:       "Alto",
			Colors:          []string{"Blanco", "Negro", "Albaricoque", "Gris"},
			Recommendations: []string{"Grooming cada 4-6 semanas", "Juegos mentales", "Limpieza de oídos"},
			LifeExpectancy:  "12-15 años",
			Weight:          "2-32 kg",
			Origin:          "Francia",
		},
		"chihuahua": {
			Name:            "Chihuahua",
			Temperament:     []string{"Alerta", "Valiente", "Apegado"},
			Characteristics: []string{"Raza muy pequeña", "Sensible al frío", "Longevo"},
			CareLevel:       "Bajo",
			Colors:          []string{"Leonado", "Negro", "Chocolate", "Crema"},
			Recommendations: []string{"Abrigo en invierno", "Higiene dental", "Evitar caídas"},
			LifeExpectancy:  "14-16 años",
			Weight:          "1.5-3 kg",
			Origin:          "México",
		},
		"beagle": {
			Name:            "Beagle",
			Temperament:     []string{"Curioso", "Alegre", "Sociable"},
			Characteristics: []string{"Gran olfato", "Vocal", "Tendencia a escaparse"},
			CareLevel:       "Medio",
			Colors:          []string{"Tricolor", "Limón y blanco"},
			Recommendations: []string{"Patio cercado", "Control de porciones", "Paseos largos"},
			LifeExpectancy:  "12-15 años",
			Weight:          "9-11 kg",
			Origin:          "Inglaterra",
		},
		mixed: {
			Name:            "Mestizo",
			Temperament:     []string{"Variable", "Adaptable"},
			Characteristics: []string{"Genética diversa", "Rasgos combinados"},
			CareLevel:       "Medio",
			Colors:          []string{"Variado"},
			Recommendations: []string{"Chequeo veterinario anual", "Ejercicio según tamaño"},
			LifeExpectancy:  "10-15 años",
			Weight:          "Variable",
			Origin:          "Mixto",
		},
	},
	"cat": {
		"persian": {
			Name:            "Persa",
			Temperament:     []string{"Tranquilo", "Dulce", "Hogareño"},
			Characteristics: []string{"Pelo largo", "Cara chata", "Poco activo"},
			CareLevel:       "Alto",
			Colors:          []string{"Blanco", "Gris", "Crema", "Bicolor"},
			Recommendations: []string{"Cepillado diario", "Limpieza de ojos", "Control renal"},
			LifeExpectancy:  "12-17 años",
			Weight:          "3-6 kg",
			Origin:          "Irán",
		},
		"siamese": {
			Name:            "Siamés",
			Temperament:     []string{"Vocal", "Social", "Curioso"},
			Characteristics: []string{"Ojos azules", "Puntos de color", "Muy comunicativo"},
			CareLevel:       "Medio",
			Colors:          []string{"Seal point", "Blue point", "Chocolate point"},
			Recommendations: []string{"Compañía frecuente", "Juego interactivo", "Higiene dental"},
			LifeExpectancy:  "12-20 años",
			Weight:          "3-5 kg",
			Origin:          "Tailandia",
		},
		"maine coon": {
			Name:            "Maine Coon",
			Temperament:     []string{"Gentil", "Sociable", "Juguetón"},
			Characteristics: []string{"Gran tamaño", "Pelaje resistente al agua", "Orejas con penachos"},
			CareLevel:       "Medio",
			Colors:          []string{"Atigrado marrón", "Negro", "Rojo"},
			Recommendations: []string{"Cepillado semanal", "Control cardíaco", "Espacio para trepar"},
			LifeExpectancy:  "12-15 años",
			Weight:          "5-11 kg",
			Origin:          "Estados Unidos",
		},
		"bengal": {
			Name:            "Bengalí",
			Temperament:     []string{"Enérgico", "Inteligente", "Aventurero"},
			Characteristics: []string{"Pelaje moteado", "Le gusta el agua", "Muy activo"},
			CareLevel:       "Medio",
			Colors:          []string{"Marrón moteado", "Nieve", "Plata"},
			Recommendations: []string{"Enriquecimiento ambiental", "Árboles para trepar", "Juego diario"},
			LifeExpectancy:  "12-16 años",
			Weight:          "4-7 kg",
			Origin:          "Estados Unidos",
		},
		"sphynx": {
			Name:            "Esfinge",
			Temperament:     []string{"Afectuoso", "Extrovertido", "Demandante"},
			Characteristics: []string{"Sin pelo", "Piel sensible", "Busca calor"},
			CareLevel:       "Alto",
			Colors:          []string{"Rosado", "Negro", "Bicolor"},
			Recommendations: []string{"Baños semanales", "Protección solar", "Ambiente templado"},
			LifeExpectancy:  "8-14 años",
			Weight:          "3-5 kg",
			Origin:          "Canadá",
		},
		mixed: {
			Name:            "Mestizo",
			Temperament:     []string{"Independiente", "Adaptable"},
			Characteristics: []string{"Genética diversa", "Robusto"},
			CareLevel:       "Bajo",
			Colors:          []string{"Variado"},
			Recommendations: []string{"Vacunación al día", "Arenero limpio", "Castración"},
			LifeExpectancy:  "12-18 años",
			Weight:          "3-6 kg",
			Origin:          "Mixto",
		},
	},
	"bird": {
		"budgerigar": {
			Name:            "Periquito",
			Temperament:     []string{"Social", "Activo", "Parlanchín"},
			Characteristics: []string{"Tamaño pequeño", "Vive en grupo", "Puede imitar palabras"},
			CareLevel:       "Bajo",
			Colors:          []string{"Verde", "Azul", "Amarillo"},
			Recommendations: []string{"Jaula amplia", "Compañía de otra ave", "Dieta con verduras"},
			LifeExpectancy:  "5-10 años",
			Weight:          "30-40 g",
			Origin:          "Australia",
		},
		"cockatiel": {
			Name:            "Ninfa",
			Temperament:     []string{"Cariñoso", "Tranquilo", "Silbador"},
			Characteristics: []string{"Cresta expresiva", "Fácil de domesticar"},
			CareLevel:       "Medio",
			Colors:          []string{"Gris", "Lutino", "Perla"},
			Recommendations: []string{"Tiempo fuera de la jaula", "Baños de agua", "Luz natural"},
			LifeExpectancy:  "15-20 años",
			Weight:          "80-120 g",
			Origin:          "Australia",
		},
		"canary": {
			Name:            "Canario",
			Temperament:     []string{"Tranquilo", "Independiente"},
			Characteristics: []string{"Canto melodioso", "Poco manipulable"},
			CareLevel:       "Bajo",
			Colors:          []string{"Amarillo", "Rojo", "Blanco"},
			Recommendations: []string{"Evitar corrientes de aire", "Semillas variadas", "Jaula limpia"},
			LifeExpectancy:  "10-15 años",
			Weight:          "15-30 g",
			Origin:          "Islas Canarias",
		},
		"african grey": {
			Name:            "Loro Gris Africano",
			Temperament:     []string{"Muy inteligente", "Sensible", "Apegado"},
			Characteristics: []string{"Gran capacidad de habla", "Necesita estímulo mental"},
			CareLevel:       "Alto",
			Colors:          []string{"Gris con cola roja"},
			Recommendations: []string{"Enriquecimiento diario", "Dieta con pellets", "Evitar estrés"},
			LifeExpectancy:  "40-60 años",
			Weight:          "400-650 g",
			Origin:          "África Central",
		},
		mixed: {
			Name:            "Ave sin identificar",
			Temperament:     []string{"Variable"},
			Characteristics: []string{"Requiere identificación de especie"},
			CareLevel:       "Medio",
			Colors:          []string{"Variado"},
			Recommendations: []string{"Consultar veterinario de aves", "Jaula adecuada al tamaño"},
			LifeExpectancy:  "Variable",
			Weight:          "Variable",
			Origin:          "Desconocido",
		},
	},
	"other": {
		mixed: {
			Name:            "Desconocido",
			Temperament:     []string{"Variable"},
			Characteristics: []string{"Especie no identificada"},
			CareLevel:       "Variable",
			Colors:          []string{"Variado"},
			Recommendations: []string{"Consultar veterinario especialista en exóticos"},
			LifeExpectancy:  "Variable",
			Weight:          "Variable",
			Origin:          "Desconocido",
		},
	},
}

// aliases mapea nombres alternativos (español, abreviaturas) a la key canónica.
var aliases = map[string]map[string]string{
	"dog": {
		"labrador":        "labrador retriever",
		"pastor alemán":   "german shepherd",
		"pastor aleman":   "german shepherd",
		"alsatian":        "german shepherd",
		"golden":          "golden retriever",
		"caniche":         "poodle",
		"french bulldog":  "bulldog",
		"bulldog francés": "bulldog",
		"english bulldog": "bulldog",
	},
	"cat": {
		"persa":   "persian",
		"siamés":  "siamese",
		"siames":  "siamese",
		"bengalí": "bengal",
		"esfinge": "sphynx",
	},
	"bird": {
		"budgie":      "budgerigar",
		"periquito":   "budgerigar",
		"parakeet":    "budgerigar",
		"ninfa":       "cockatiel",
		"canario":     "canary",
		"yaco":        "african grey",
		"grey parrot": "african grey",
	},
}

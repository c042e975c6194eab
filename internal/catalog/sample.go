package catalog

// SampleRecipes returns the starter recipes seeded when the collection is
// empty on first run.
func SampleRecipes() []Recipe {
	return []Recipe{
		{
			Title:       "Spaghetti aglio e olio",
			Description: "Il primo piatto piu veloce della cucina italiana.",
			Category:    "primo",
			Ingredients: []Ingredient{
				{Item: "spaghetti", Quantity: "320g"},
				{Item: "aglio", Quantity: "3 spicchi"},
				{Item: "olio extravergine", Quantity: "60ml"},
				{Item: "peperoncino", Quantity: "1"},
			},
			Steps: []Step{
				{Number: 1, Text: "Cuoci gli spaghetti in abbondante acqua salata."},
				{Number: 2, Text: "Soffriggi aglio e peperoncino nell'olio a fuoco dolce."},
				{Number: 3, Text: "Scola la pasta al dente e saltala nel condimento."},
			},
			TimeMinutes: 15,
			Difficulty:  "facile",
			Calories:    520,
		},
		{
			Title:       "Caprese",
			Description: "Pomodoro, mozzarella e basilico.",
			Category:    "antipasto",
			Ingredients: []Ingredient{
				{Item: "pomodori", Quantity: "2"},
				{Item: "mozzarella di bufala", Quantity: "250g"},
				{Item: "basilico", Quantity: "qb"},
			},
			Steps: []Step{
				{Number: 1, Text: "Affetta pomodori e mozzarella."},
				{Number: 2, Text: "Componi a strati con basilico, olio e sale."},
			},
			TimeMinutes: 10,
			Difficulty:  "facile",
			Calories:    340,
		},
		{
			Title:       "Tiramisu",
			Description: "Il dolce al cucchiaio classico, senza cottura.",
			Category:    "dolce",
			Ingredients: []Ingredient{
				{Item: "savoiardi", Quantity: "300g"},
				{Item: "mascarpone", Quantity: "500g"},
				{Item: "uova", Quantity: "4"},
				{Item: "caffe", Quantity: "4 tazzine"},
				{Item: "cacao amaro", Quantity: "qb"},
			},
			Steps: []Step{
				{Number: 1, Text: "Monta i tuorli con lo zucchero e incorpora il mascarpone."},
				{Number: 2, Text: "Inzuppa i savoiardi nel caffe e alterna strati di crema."},
				{Number: 3, Text: "Spolvera di cacao e lascia riposare in frigo 4 ore."},
			},
			TimeMinutes: 30,
			Difficulty:  "media",
			Calories:    450,
			Notes:       "Meglio se preparato il giorno prima.",
		},
		{
			Title:       "Vellutata di zucca",
			Description: "Contorno caldo leggero, adatto anche come primo.",
			Category:    "light",
			Ingredients: []Ingredient{
				{Item: "zucca", Quantity: "600g"},
				{Item: "patate", Quantity: "2"},
				{Item: "brodo vegetale", Quantity: "500ml"},
			},
			Steps: []Step{
				{Number: 1, Text: "Rosola zucca e patate a cubetti."},
				{Number: 2, Text: "Copri di brodo e cuoci 20 minuti."},
				{Number: 3, Text: "Frulla fino a ottenere una crema liscia."},
			},
			TimeMinutes: 35,
			Difficulty:  "facile",
			Calories:    210,
		},
	}
}

// SeedIfEmpty inserts the sample recipes when the collection is empty.
func (r *Repository) SeedIfEmpty() error {
	if len(r.recipes) > 0 {
		return nil
	}
	for _, rec := range SampleRecipes() {
		if _, err := r.UpsertRecipe(rec); err != nil {
			return err
		}
	}
	return nil
}

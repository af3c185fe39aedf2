package catalog

// defaultItems is the built-in fashion catalog.
var defaultItems = []Item{
	{Name: "Boho Dress", Description: "Flowy, earthy tones for festival vibes", Tags: []string{"boho", "cozy"}},
	{Name: "Denim Jacket", Description: "Casual wear with a cool street vibe", Tags: []string{"urban", "energetic"}},
	{Name: "Silk Saree", Description: "Elegant traditional attire for festive occasions", Tags: []string{"elegant", "ethnic"}},
	{Name: "Graphic Tee", Description: "Trendy t-shirt with artistic prints", Tags: []string{"artsy", "casual"}},
	{Name: "Leather Boots", Description: "Bold footwear with a rugged street style", Tags: []string{"edgy", "urban"}},
	{Name: "Floral Skirt", Description: "Light and cheerful, perfect for summer picnics", Tags: []string{"feminine", "playful"}},
	{Name: "Blazer Suit", Description: "Professional outfit for confident work vibes", Tags: []string{"formal", "classy"}},
	{Name: "Hoodie", Description: "Comfy casual hoodie for chill weekends", Tags: []string{"cozy", "casual"}},
}

// Default returns the built-in eight-item fashion catalog, without
// embeddings.
func Default() *Catalog {
	c, err := New(defaultItems...)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}

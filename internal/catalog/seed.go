package catalog

import (
	"time"

	"github.com/google/uuid"
)

// SampleProducts returns the demo storefront inventory. Ids are freshly
// generated on every call; the seeder only runs against an empty table.
func SampleProducts(now time.Time) []Product {
	now = now.UTC()
	return []Product{
		{
			ID:          uuid.NewString(),
			Name:        "Geladeira Brastemp Frost Free",
			Description: "Geladeira duplex com tecnologia frost free, 400 litros, eficiência energética A+",
			Price:       2299.99,
			Category:    "geladeira",
			Brand:       "Brastemp",
			ImageURL:    "https://images.unsplash.com/photo-1484154218962-a197022b5858",
			InStock:     true,
			Specifications: map[string]interface{}{
				"capacidade": "400L",
				"cor":        "Inox",
				"dimensoes":  "70x60x175cm",
				"consumo":    "45kWh/mês",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Máquina de Lavar Electrolux",
			Description: "Lavadora de roupas 12kg, com 16 programas de lavagem e função eco",
			Price:       1599.99,
			Category:    "lavadora",
			Brand:       "Electrolux",
			ImageURL:    "https://images.unsplash.com/photo-1597418048367-7dd01e4404ee",
			InStock:     true,
			Specifications: map[string]interface{}{
				"capacidade": "12kg",
				"programas":  "16",
				"cor":        "Branca",
				"dimensoes":  "60x65x95cm",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Fogão Consul 5 Bocas",
			Description: "Fogão a gás com 5 bocas, forno com grill e mesa de vidro temperado",
			Price:       899.99,
			Category:    "fogao",
			Brand:       "Consul",
			ImageURL:    "https://images.unsplash.com/photo-1586208958839-06c17cacdf08",
			InStock:     true,
			Specifications: map[string]interface{}{
				"bocas": "5",
				"forno": "Sim com Grill",
				"mesa":  "Vidro temperado",
				"cor":   "Inox",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Geladeira Consul Frost Free",
			Description: "Refrigerador de 2 portas com compartimento para frutas e verduras",
			Price:       1899.99,
			Category:    "geladeira",
			Brand:       "Consul",
			ImageURL:    "https://images.pexels.com/photos/2343467/pexels-photo-2343467.jpeg",
			InStock:     true,
			Specifications: map[string]interface{}{
				"capacidade": "350L",
				"portas":     "2",
				"cor":        "Branca",
				"consumo":    "40kWh/mês",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Lava e Seca Samsung",
			Description: "Máquina lava e seca com capacidade para 11kg de lavagem e 7kg de secagem",
			Price:       3299.99,
			Category:    "lavadora",
			Brand:       "Samsung",
			ImageURL:    "https://images.unsplash.com/photo-1626806819282-2c1dc01a5e0c",
			InStock:     true,
			Specifications: map[string]interface{}{
				"capacidade_lavagem": "11kg",
				"capacidade_secagem": "7kg",
				"cor":                "Inox",
				"funcoes":            "15 programas",
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Cooktop Electrolux Indução",
			Description: "Cooktop por indução com 4 zonas de aquecimento e controle touch",
			Price:       1299.99,
			Category:    "fogao",
			Brand:       "Electrolux",
			ImageURL:    "https://images.unsplash.com/photo-1721613877687-c9099b698faa",
			InStock:     true,
			Specifications: map[string]interface{}{
				"tipo":     "Indução",
				"zonas":    "4",
				"controle": "Touch",
				"potencia": "7000W",
			},
			CreatedAt: now,
		},
	}
}

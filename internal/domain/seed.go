package domain

// DefaultCatalog seeds the product slot on first run or whenever the
// persisted catalog cannot be read back. Prices are KES minor units.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Traditional Beaded Gourd",
			Category:    CategoryDecor,
			Price:       4500,
			Description: "A traditional calabash gourd adorned with intricate multicolored beadwork. Used traditionally for storage or as a decorative masterpiece.",
			Image:       "download%20(11).jpeg",
			Rating:      4.8,
			Stock:       5,
			History:     "Calabashes have been used for centuries across Africa as vessels for food and water, often decorated to reflect status and identity.",
		},
		{
			ID:          "2",
			Name:        "Hand-Woven Beaded Strip",
			Category:    CategoryBeadwork,
			Price:       1200,
			Description: "A strip of fine beadwork displaying geometric patterns. Perfect for sewing onto fabric or framing.",
			Image:       "download%20(12).jpeg",
			Rating:      4.5,
			Stock:       15,
		},
		{
			ID:          "3",
			Name:        "Maasai Bangle Collection",
			Category:    CategoryJewelry,
			Price:       800,
			Description: "Vibrant, rigid beaded bangles available in various traditional colors.",
			Image:       "download%20(13).jpeg",
			Rating:      4.7,
			Stock:       40,
		},
		{
			ID:          "4",
			Name:        "Red Ceremonial Necklace",
			Category:    CategoryJewelry,
			Price:       5500,
			Description: "A classic multi-strand red bead necklace, traditionally worn by Maasai women.",
			Image:       "download%20(14).jpeg",
			Rating:      4.9,
			Stock:       8,
		},
		{
			ID:          "5",
			Name:        "Grand Beaded Collar",
			Category:    CategoryJewelry,
			Price:       7000,
			Description: "An expansive, flat beaded collar necklace featuring a spectrum of colors.",
			Image:       "download%20(15).jpeg",
			Rating:      5.0,
			Stock:       3,
		},
		{
			ID:          "6",
			Name:        "Kenya Flag Wristbands",
			Category:    CategoryAccessories,
			Price:       500,
			Description: "Show your pride with these beaded wristbands in the colors of the Kenyan flag.",
			Image:       "download%20(16).jpeg",
			Rating:      4.6,
			Stock:       100,
		},
		{
			ID:          "7",
			Name:        "Kenya Flag Beaded Sash",
			Category:    CategoryAccessories,
			Price:       3500,
			Description: "A long, durable beaded sash or belt featuring the Kenyan flag pattern. Can be used as a strap or decorative belt.",
			Image:       "download%20(17).jpeg",
			Rating:      4.8,
			Stock:       10,
		},
		{
			ID:          "8",
			Name:        "Chunky Glass Bead Strands",
			Category:    CategoryBeadwork,
			Price:       2800,
			Description: "Strands of large, colorful glass beads. Ideal for collectors or making statement jewelry.",
			Image:       "download%20(18).jpeg",
			Rating:      4.4,
			Stock:       25,
		},
		{
			ID:          "9",
			Name:        "Maasai Shield Keychains",
			Category:    CategoryAccessories,
			Price:       350,
			Description: "Miniature beaded keychains shaped like a traditional shield. A perfect small gift.",
			Image:       "download%20(19).jpeg",
			Rating:      4.7,
			Stock:       150,
		},
		{
			ID:          "10",
			Name:        "Ceremonial Jewelry Set",
			Category:    CategoryJewelry,
			Price:       15000,
			Description: "A complete ceremonial set comprising necklace and headgear on a white display.",
			Image:       "images%20(8).jpeg",
			Rating:      5.0,
			Stock:       2,
		},
		{
			ID:          "11",
			Name:        "Teal Geometric Earrings",
			Category:    CategoryJewelry,
			Price:       1200,
			Description: "Teardrop earrings featuring a striking teal, black, and white pattern.",
			Image:       "images%20(9).jpeg",
			Rating:      4.6,
			Stock:       20,
		},
		{
			ID:          "12",
			Name:        "Tribal Fringe Earrings",
			Category:    CategoryJewelry,
			Price:       1400,
			Description: "Long fringe earrings with diamond patterns in earth tones.",
			Image:       "images%20(10).jpeg",
			Rating:      4.8,
			Stock:       18,
		},
		{
			ID:          "13",
			Name:        "Leather Beaded Belts",
			Category:    CategoryAccessories,
			Price:       3800,
			Description: "Premium dark leather belts inlaid with intricate, multicolored beadwork patterns.",
			Image:       "images%20(11).jpeg",
			Rating:      4.9,
			Stock:       12,
		},
		{
			ID:          "14",
			Name:        "Antique Trade Beads",
			Category:    CategoryBeadwork,
			Price:       3000,
			Description: "Rare antique trade beads with a rich history, displayed on a red background.",
			Image:       "images%20(12).jpeg",
			Rating:      4.5,
			Stock:       6,
		},
		{
			ID:          "15",
			Name:        "Beaded Wire Bowl",
			Category:    CategoryDecor,
			Price:       2500,
			Description: "Hand-woven wire bowl interlaced with colorful beads. Functional art.",
			Image:       "images%20(13).jpeg",
			Rating:      4.7,
			Stock:       10,
		},
	}
}
